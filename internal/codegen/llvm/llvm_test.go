package llvm

import (
	"strings"
	"testing"

	"github.com/HicaroD/minicc/internal/session"
	"github.com/HicaroD/minicc/internal/symbols"
)

func generate(t *testing.T, src string, initial *symbols.Store) string {
	t.Helper()

	s := session.New(session.DefaultOptions())
	if initial != nil {
		for _, entry := range initial.Entries() {
			s.Declared.Add(entry.Name)
		}
	}
	program, err := s.Compile(src)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}

	cg := NewCG("test.mc", program, initial)
	defer cg.Dispose()

	if err := cg.Generate(); err != nil {
		t.Fatalf("unexpected codegen error: %v", err)
	}
	return cg.IR()
}

func TestGenerateArithmetic(t *testing.T) {
	ir := generate(t, "x = 3 + 4 * 2; y = x - 1;", nil)

	expected := []string{
		"@var.x = private global i64 0",
		"@var.y = private global i64 0",
		"declare i32 @printf(",
		"define i32 @main()",
		"ret i32 0",
	}
	for _, want := range expected {
		if !strings.Contains(ir, want) {
			t.Errorf("expected IR to contain %q\n%s", want, ir)
		}
	}
}

func TestGenerateDivisionCheck(t *testing.T) {
	ir := generate(t, "a = 10; b = 100 / a;", nil)

	for _, want := range []string{"sdiv i64", "icmp eq i64", ".divzero", "ret i32 1"} {
		if !strings.Contains(ir, want) {
			t.Errorf("expected IR to contain %q\n%s", want, ir)
		}
	}
}

func TestGenerateWithoutDivisionHasNoCheck(t *testing.T) {
	ir := generate(t, "a = 1 + 2;", nil)
	if strings.Contains(ir, ".divzero") {
		t.Errorf("expected no division-by-zero block\n%s", ir)
	}
}

func TestGenerateUsesInitialStore(t *testing.T) {
	store := symbols.NewStore()
	store.Set("base", 40)

	ir := generate(t, "answer = base + 2;", store)
	if !strings.Contains(ir, "@var.base = private global i64 40") {
		t.Errorf("expected base to start at 40\n%s", ir)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	src := "a = 6; b = a * 7; c = b / a - 1;"
	if generate(t, src, nil) != generate(t, src, nil) {
		t.Errorf("expected identical IR for identical programs")
	}
}

func TestGenerateVariablesNamedLikeFunctions(t *testing.T) {
	ir := generate(t, "main = 1; printf = main + 1;", nil)

	expected := []string{
		"@var.main = private global i64 0",
		"@var.printf = private global i64 0",
		"define i32 @main()",
		"declare i32 @printf(",
	}
	for _, want := range expected {
		if !strings.Contains(ir, want) {
			t.Errorf("expected IR to contain %q\n%s", want, ir)
		}
	}
	for _, renamed := range []string{"@main.1", "@printf.1"} {
		if strings.Contains(ir, renamed) {
			t.Errorf("expected no renamed symbol %q\n%s", renamed, ir)
		}
	}
}

func TestGenerateDivisionOverflowGuard(t *testing.T) {
	ir := generate(t, "a = 10; b = 1; c = a / b;", nil)

	for _, want := range []string{"icmp eq i64", "and i1", "select i1", "sdiv i64"} {
		if !strings.Contains(ir, want) {
			t.Errorf("expected IR to contain %q\n%s", want, ir)
		}
	}
}
