package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ppiankov/gleaner/internal/model"
)

func sampleResult() *model.Result {
	return &model.Result{
		Title: "Dell Latitude 7490 i5-8350U 256GB SSD",
		Attributes: model.FlatAttributes{
			{Key: "cpu_brand", Value: "Intel"},
			{Key: "cpu_family", Value: "Core i5"},
			{Key: "cpu_model", Value: "8350U"},
			{Key: "storage_capacity1", Value: "256GB"},
			{Key: "storage_type", Value: "SSD"},
		},
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	if _, err := NewRenderer("xml"); err == nil {
		t.Error("Expected error for unknown format, got nil")
	}
}

func TestRenderer_JSONKeepsAttributeOrder(t *testing.T) {
	r, err := NewRenderer("json")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}

	order := []string{"cpu_brand", "cpu_family", "cpu_model", "storage_capacity1", "storage_type"}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, `"`+key+`"`)
		if idx < 0 {
			t.Fatalf("Expected key %s in output", key)
		}
		if idx < last {
			t.Errorf("Expected %s after previous key, got position %d < %d", key, idx, last)
		}
		last = idx
	}
}

func TestRenderer_YAMLKeepsAttributeOrder(t *testing.T) {
	r, err := NewRenderer("yaml")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "---\n") {
		t.Errorf("Expected document marker, got %q", out[:10])
	}
	if !strings.Contains(out, "title: Dell Latitude 7490 i5-8350U 256GB SSD") {
		t.Errorf("Expected title line, got:\n%s", out)
	}
	if strings.Index(out, "cpu_brand:") > strings.Index(out, "storage_type:") {
		t.Errorf("Expected cpu_brand before storage_type, got:\n%s", out)
	}
}

func TestRenderer_Plain(t *testing.T) {
	r, err := NewRenderer("plain")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "Dell Latitude 7490 i5-8350U 256GB SSD\n" +
		"  cpu_brand: Intel\n" +
		"  cpu_family: Core i5\n" +
		"  cpu_model: 8350U\n" +
		"  storage_capacity1: 256GB\n" +
		"  storage_type: SSD\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestRenderer_RenderAll_JSONArray(t *testing.T) {
	r, err := NewRenderer("json")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	results := []*model.Result{sampleResult(), sampleResult()}
	if err := r.RenderAll(&buf, results); err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Expected valid JSON array, got %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("Expected 2 results, got %d", len(decoded))
	}
}

func TestRenderer_RenderAll_YAMLStream(t *testing.T) {
	r, err := NewRenderer("yaml")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	results := []*model.Result{sampleResult(), sampleResult()}
	if err := r.RenderAll(&buf, results); err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}

	if got := strings.Count(buf.String(), "---\n"); got != 2 {
		t.Errorf("Expected 2 document markers, got %d", got)
	}
}
