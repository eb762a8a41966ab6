package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"ats-checker/internal/analysis"
	"ats-checker/internal/config"
	"ats-checker/internal/constants"
	"ats-checker/internal/extractor"
	"ats-checker/internal/logger"
	"ats-checker/internal/tracing"
)

var tracer = otel.Tracer("ats-checker/handler")

// AnalyzeHandler wires the upload transport to the extraction and analysis
// core. It holds no per-request state.
type AnalyzeHandler struct {
	cfg        *config.Config
	extractors *extractor.Set
	parser     *analysis.Parser
	engine     *analysis.Engine
}

// NewAnalyzeHandler builds the handler.
func NewAnalyzeHandler(cfg *config.Config, extractors *extractor.Set, parser *analysis.Parser, engine *analysis.Engine) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:        cfg,
		extractors: extractors,
		parser:     parser,
		engine:     engine,
	}
}

// HandleAnalyze serves POST /api/analyze: multipart "file" plus optional
// "job_title" and "job_description" form fields.
func (h *AnalyzeHandler) HandleAnalyze(c context.Context, ctx *app.RequestContext) {
	c, span := tracer.Start(c, "AnalyzeHandler.HandleAnalyze")
	defer span.End()

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		respondError(ctx, consts.StatusBadRequest, "resume file is required")
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), ".")
	if !constants.SupportedFileTypes[ext] {
		tracing.RecordErrorWithInfo(span,
			fmt.Errorf("unsupported file type %q", ext),
			tracing.ErrorTypeValidation,
			attribute.String("upload.filename", fileHeader.Filename))
		respondError(ctx, consts.StatusBadRequest,
			"unsupported file type, upload a PDF, DOCX, DOC, or TXT file")
		return
	}
	if fileHeader.Size > h.cfg.Server.MaxUploadBytes {
		respondError(ctx, consts.StatusBadRequest,
			fmt.Sprintf("file too large, the limit is %d MB", h.cfg.Server.MaxUploadBytes>>20))
		return
	}
	if fileHeader.Size == 0 {
		respondError(ctx, consts.StatusBadRequest, "uploaded file is empty")
		return
	}

	jobTitle := strings.TrimSpace(ctx.PostForm("job_title"))
	jobDescription := strings.TrimSpace(ctx.PostForm("job_description"))

	// The upload lives in a request-scoped temp file, removed on every
	// exit path.
	tmpPath, cleanup, err := saveUpload(fileHeader, ext)
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to stage uploaded file")
		tracing.RecordError(span, err, tracing.ErrorTypeInternal)
		respondError(ctx, consts.StatusInternalServerError, "failed to process the uploaded file")
		return
	}
	defer cleanup()

	ex, err := h.extractors.ForType(ext)
	if err != nil {
		respondError(ctx, consts.StatusBadRequest, "unsupported file type")
		return
	}

	text, err := ex.Extract(c, tmpPath)
	if err != nil {
		// Extraction is best-effort: log and fall through with empty text,
		// which the engine guard rejects with a user-facing message.
		logger.Warn().Err(err).
			Str("filename", fileHeader.Filename).
			Str("file_type", ext).
			Msg("text extraction failed, continuing with empty text")
		text = ""
	}

	parsed, result, err := h.engine.ScoreText(c, h.parser, text, jobTitle, jobDescription)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeAnalysis)
		h.respondAnalysisError(ctx, err)
		return
	}

	reportID := ""
	if id, idErr := uuid.NewV7(); idErr == nil {
		reportID = id.String()
	}

	span.SetAttributes(
		attribute.Int("report.overall_score", result.OverallScore),
		attribute.String("report.id", reportID),
	)
	ctx.JSON(consts.StatusOK, BuildReport(reportID, parsed, result))
}

// respondAnalysisError maps guard rejections to 422 with their own message
// and everything else to a generic 500. Internal detail is logged, never
// returned.
func (h *AnalyzeHandler) respondAnalysisError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, analysis.ErrInsufficientContent):
		respondError(ctx, consts.StatusUnprocessableEntity, analysis.ErrInsufficientContent.Error())
	case errors.Is(err, analysis.ErrNotAResume):
		respondError(ctx, consts.StatusUnprocessableEntity, analysis.ErrNotAResume.Error())
	default:
		logger.Error().Err(err).Msg("resume analysis failed")
		respondError(ctx, consts.StatusInternalServerError, "analysis failed, please try again")
	}
}

func respondError(ctx *app.RequestContext, status int, detail string) {
	ctx.JSON(status, utils.H{"detail": detail})
}

// saveUpload copies the multipart file into a temp file and returns its
// path with a cleanup func.
func saveUpload(fileHeader *multipart.FileHeader, ext string) (string, func(), error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "ats-upload-*."+ext)
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("close temp file: %w", err)
	}

	path := tmp.Name()
	return path, func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("failed to remove temp upload")
		}
	}, nil
}
