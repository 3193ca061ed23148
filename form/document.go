package form

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"github.com/tbxark/reportagent/types"
)

type DocumentField struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// Document 提交后的报表文档，字段顺序与 FormSchema 一致。
type Document struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Fields      []DocumentField `json:"fields"`
}

func BuildDocument(schema *types.FormSchema, state State) *Document {
	fields := make([]DocumentField, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		fields = append(fields, DocumentField{
			Name:        field.Name,
			Description: field.Description,
			Value:       state[field.Name],
		})
	}
	return &Document{
		Title:       schema.Title,
		Description: schema.Description,
		Fields:      fields,
	}
}

// WriteDocument 把提交的报表写到带时间戳的路径，每次提交只写一次。
func WriteDocument(dir string, schema *types.FormSchema, state State, now time.Time) (string, error) {
	doc := BuildDocument(schema, state)
	data, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", schema.Title, now.Format("20060102_150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	return path, nil
}
