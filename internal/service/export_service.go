package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// Поддерживаемые форматы выгрузки
const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)

const exportSheetName = "Questions"

var exportHeaders = []string{"ID", "Question", "Answer", "Category ID", "Category", "Difficulty"}

// ExportService выгружает банк вопросов в CSV или XLSX
type ExportService struct {
	questionRepo    repository.QuestionRepository
	categoryService *CategoryService
}

// NewExportService создает новый сервис выгрузки
func NewExportService(questionRepo repository.QuestionRepository, categoryService *CategoryService) *ExportService {
	return &ExportService{
		questionRepo:    questionRepo,
		categoryService: categoryService,
	}
}

// ContentType возвращает MIME-тип для формата выгрузки
func ContentType(format string) (string, error) {
	switch format {
	case ExportFormatCSV:
		return "text/csv; charset=utf-8", nil
	case ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, format)
	}
}

// ExportQuestions записывает все вопросы в w в указанном формате
func (s *ExportService) ExportQuestions(ctx context.Context, w io.Writer, format string) error {
	if _, err := ContentType(format); err != nil {
		return err
	}

	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list questions for export: %w", err)
	}
	names, err := s.categoryService.CategoryNames(ctx)
	if err != nil {
		return err
	}

	if format == ExportFormatXLSX {
		return writeXLSX(w, questions, names)
	}
	return writeCSV(w, questions, names)
}

func writeCSV(w io.Writer, questions []entity.Question, names map[entity.CategoryID]string) error {
	// BOM для корректного отображения UTF-8 в Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return err
	}
	for _, q := range questions {
		record := []string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Question),
			sanitizeForExcel(q.Answer),
			q.Category.String(),
			sanitizeForExcel(names[q.Category]),
			strconv.Itoa(q.Difficulty),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeXLSX использует StreamWriter, чтобы не держать весь лист в памяти
func writeXLSX(w io.Writer, questions []entity.Question, names map[entity.CategoryID]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(exportSheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, q := range questions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			q.ID,
			sanitizeForExcel(q.Question),
			sanitizeForExcel(q.Answer),
			uint(q.Category),
			sanitizeForExcel(names[q.Category]),
			q.Difficulty,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
