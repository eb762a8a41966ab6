package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsResumeAcceptsRealResume(t *testing.T) {
	c := NewClassifier(DefaultRules())
	assert.True(t, c.IsResume(fullResumeText()))
}

func TestIsResumeRejectsInvoice(t *testing.T) {
	c := NewClassifier(DefaultRules())
	assert.False(t, c.IsResume(invoiceText()))
}

func TestIsResumeRejectsShortDocument(t *testing.T) {
	c := NewClassifier(DefaultRules())
	// All the right indicators, but nowhere near the word floor.
	assert.False(t, c.IsResume("experience education skills email@example.com"))
}

func TestIsResumeRequiresEmailSignal(t *testing.T) {
	c := NewClassifier(DefaultRules())

	text := strings.Repeat("experience education skills summary references career ", 25)
	assert.False(t, c.IsResume(text), "no @ and no 'email' word")
	assert.True(t, c.IsResume(text+" reach me at jane@example.com"))
}

func TestIsResumeRejectsWhenBillingSignalsDominate(t *testing.T) {
	c := NewClassifier(DefaultRules())

	// Two resume indicators buried in billing language, plenty of words.
	text := strings.Repeat("invoice amount due balance payment terms subtotal receipt bill to ", 15) +
		"experience education jane@example.com"
	assert.False(t, c.IsResume(text))
}
