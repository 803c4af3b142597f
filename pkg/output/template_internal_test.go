package output

import (
	"fmt"
	"testing"

	"github.com/goliatone/go-formnote/pkg/model"
)

func TestTemplateEngine_CacheIsKeyedByLayout(t *testing.T) {
	engine := newTemplateEngine()
	fields := []model.Field{{Key: "name", Type: model.FieldTypeText, Label: "Name"}}
	values := map[string]any{"name": "Ada"}

	for i := 0; i < 50; i++ {
		body := fmt.Sprintf("# Draft %d\n\n{{name}}\n", i)
		got, err := engine.render(body, fields, values, nil)
		if err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		if want := fmt.Sprintf("# Draft %d\n\nAda\n", i); got != want {
			t.Fatalf("render %d = %q, want %q", i, got, want)
		}
	}
	if got := engine.cached(); got != 1 {
		t.Fatalf("expected edits to literal text to share one compiled template, got %d", got)
	}
}

func TestTemplateEngine_CacheIsBounded(t *testing.T) {
	engine := newTemplateEngine()
	for i := 0; i < maxCachedTemplates*2+3; i++ {
		if _, err := engine.compile(fmt.Sprintf("layout %d", i)); err != nil {
			t.Fatalf("compile %d: %v", i, err)
		}
		if got := engine.cached(); got > maxCachedTemplates {
			t.Fatalf("cache grew to %d entries, bound is %d", got, maxCachedTemplates)
		}
	}
}
