// ats-check analyzes a single resume file from the command line and prints
// the same JSON report the HTTP API returns.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"ats-checker/internal/analysis"
	"ats-checker/internal/api/handler"
	"ats-checker/internal/constants"
	"ats-checker/internal/extractor"
)

func main() {
	var (
		filePath    string
		jobTitle    string
		jobDescPath string
		outPath     string
	)
	pflag.StringVarP(&filePath, "file", "f", "", "Path to the resume file (pdf, docx, doc, or txt)")
	pflag.StringVar(&jobTitle, "job-title", "", "Target job title (optional)")
	pflag.StringVar(&jobDescPath, "job-description-file", "", "Path to a job description text file (optional)")
	pflag.StringVarP(&outPath, "out", "o", "", "Write the JSON report to this path instead of stdout")
	pflag.Parse()

	if strings.TrimSpace(filePath) == "" {
		exitErr("a resume file is required, pass --file")
	}

	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(filePath)), ".")
	if !constants.SupportedFileTypes[fileType] {
		exitErr(fmt.Sprintf("unsupported file type %q", fileType))
	}

	jobDescription := ""
	if jobDescPath != "" {
		data, err := os.ReadFile(jobDescPath)
		if err != nil {
			exitErr(fmt.Sprintf("read job description: %v", err))
		}
		jobDescription = string(data)
	}

	ctx := context.Background()

	extractors, err := extractor.NewSet(ctx)
	if err != nil {
		exitErr(fmt.Sprintf("initialize extractors: %v", err))
	}
	ex, err := extractors.ForType(fileType)
	if err != nil {
		exitErr(err.Error())
	}
	text, err := ex.Extract(ctx, filePath)
	if err != nil {
		exitErr(fmt.Sprintf("extract text: %v", err))
	}

	rules := analysis.DefaultRules()
	engine, err := analysis.NewEngine(rules)
	if err != nil {
		exitErr(fmt.Sprintf("build engine: %v", err))
	}
	parser := analysis.NewParser(rules)

	parsed, result, err := engine.ScoreText(ctx, parser, text, jobTitle, jobDescription)
	if err != nil {
		exitErr(err.Error())
	}

	report := handler.BuildReport("", parsed, result)
	pretty, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("encode report: %v", err))
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, append(pretty, '\n'), 0644); err != nil {
			exitErr(fmt.Sprintf("write report: %v", err))
		}
		return
	}
	fmt.Println(string(pretty))
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}
