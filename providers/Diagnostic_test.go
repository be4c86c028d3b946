package providers

import (
	"fmt"
	"sync"
	"testing"

	proto "github.com/tliron/glsp/protocol_3_16"
)

func pullDiagnostics(t *testing.T, uri string) []proto.Diagnostic {
	t.Helper()

	res, err := TextDocumentDiagnostic(nil, &DocumentDiagnosticParams{
		TextDocument: proto.TextDocumentIdentifier{URI: uri},
	})

	if err != nil {
		t.Fatalf("TextDocumentDiagnostic: %v", err)
	}

	report, ok := res.(FullDocumentDiagnosticReport)

	if !ok {
		t.Fatalf("unexpected report type: %T", res)
	}

	if report.Kind != "full" {
		t.Errorf("got kind %s, expected full", report.Kind)
	}

	return report.Items
}

func TestDiagnosticMismatchedTag(t *testing.T) {
	initialize(t)

	uri := "file:///mismatched.html"
	openTestDoc(t, uri, "<a>x</b>")

	items := pullDiagnostics(t, uri)

	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", items)
	}

	d := items[0]

	if *d.Severity != proto.DiagnosticSeverityError {
		t.Error("expected error severity")
	}

	if d.Message != "Closing tag </b> does not match opening tag <a>" {
		t.Errorf("got %q", d.Message)
	}

	data, ok := d.Data.(DiagnosticData)

	if !ok || data.Type != MismatchedTagError || data.Name != "a" {
		t.Errorf("wrong data: %v", d.Data)
	}

	expect := proto.Range{
		Start: proto.Position{Line: 0, Character: 6},
		End:   proto.Position{Line: 0, Character: 7},
	}

	if d.Range != expect {
		t.Errorf("got range %v, expected %v", d.Range, expect)
	}
}

func TestDiagnosticUnclosedTag(t *testing.T) {
	initialize(t)

	uri := "file:///unclosed.html"
	openTestDoc(t, uri, "<div>x")

	items := pullDiagnostics(t, uri)

	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", items)
	}

	d := items[0]

	if *d.Severity != proto.DiagnosticSeverityWarning {
		t.Error("expected warning severity")
	}

	if d.Message != "Element <div> is never closed" {
		t.Errorf("got %q", d.Message)
	}

	data, ok := d.Data.(DiagnosticData)

	if !ok || data.Type != UnclosedTagWarning || data.Name != "div" {
		t.Errorf("wrong data: %v", d.Data)
	}
}

func TestDiagnosticUnclosedDisabled(t *testing.T) {
	initialize(t)

	warnUnclosedTags = false

	t.Cleanup(func() {
		warnUnclosedTags = true
	})

	uri := "file:///unclosed-off.html"
	openTestDoc(t, uri, "<div>x")

	items := pullDiagnostics(t, uri)

	if len(items) != 0 {
		t.Errorf("expected no diagnostics, got %v", items)
	}
}

func TestDiagnosticValidDoc(t *testing.T) {
	initialize(t)

	uri := "file:///valid.html"
	openTestDoc(t, uri, "<div><br><span>x</span></div>")

	items := pullDiagnostics(t, uri)

	if len(items) != 0 {
		t.Errorf("expected no diagnostics, got %v", items)
	}
}

func TestDocDebouncerConcurrentSet(t *testing.T) {
	dd := createDocDebouncer()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				dd.Set(fmt.Sprintf("file:///debounce-%d-%d.html", n, j), nil)
			}
		}(i)
	}

	wg.Wait()
	dd.Flush()

	dd.lock.Lock()
	defer dd.lock.Unlock()

	if len(dd.Docs) != 0 {
		t.Errorf("flush must drain the queue, %d left", len(dd.Docs))
	}
}

func TestCodeActionChangeClosingTag(t *testing.T) {
	initialize(t)

	uri := "file:///fix-mismatched.html"
	openTestDoc(t, uri, "<a>x</b>")

	nameRange := proto.Range{
		Start: proto.Position{Line: 0, Character: 6},
		End:   proto.Position{Line: 0, Character: 7},
	}

	res, err := CodeAction(nil, &proto.CodeActionParams{
		TextDocument: proto.TextDocumentIdentifier{URI: uri},
		Range:        nameRange,
		Context: proto.CodeActionContext{
			Diagnostics: []proto.Diagnostic{
				{
					Range: nameRange,
					Data: map[string]any{
						"type": MismatchedTagError,
						"name": "a",
					},
				},
			},
		},
	})

	if err != nil {
		t.Fatalf("CodeAction: %v", err)
	}

	list, ok := res.([]proto.CodeAction)

	if !ok || len(list) != 1 {
		t.Fatalf("expected 1 action, got %v", res)
	}

	action := list[0]

	if action.Title != "Change closing tag to </a>" {
		t.Errorf("got title %q", action.Title)
	}

	edits := action.Edit.Changes[uri]

	if len(edits) != 1 || edits[0].NewText != "a" || edits[0].Range != nameRange {
		t.Errorf("wrong edit: %v", edits)
	}
}

func TestCodeActionStaleMismatchDiagnostic(t *testing.T) {
	initialize(t)

	uri := "file:///fix-stale.html"
	openTestDoc(t, uri, "<a>x</a>")

	nameRange := proto.Range{
		Start: proto.Position{Line: 0, Character: 6},
		End:   proto.Position{Line: 0, Character: 7},
	}

	res, err := CodeAction(nil, &proto.CodeActionParams{
		TextDocument: proto.TextDocumentIdentifier{URI: uri},
		Range:        nameRange,
		Context: proto.CodeActionContext{
			Diagnostics: []proto.Diagnostic{
				{
					Range: nameRange,
					Data: map[string]any{
						"type": MismatchedTagError,
						"name": "a",
					},
				},
			},
		},
	})

	if err != nil {
		t.Fatalf("CodeAction: %v", err)
	}

	list, ok := res.([]proto.CodeAction)

	if !ok || len(list) != 0 {
		t.Errorf("expected no actions for an already fixed tag, got %v", res)
	}
}

func TestCodeActionAddClosingTag(t *testing.T) {
	initialize(t)

	uri := "file:///fix-unclosed.html"
	openTestDoc(t, uri, "<div>x")

	nameRange := proto.Range{
		Start: proto.Position{Line: 0, Character: 1},
		End:   proto.Position{Line: 0, Character: 4},
	}

	res, err := CodeAction(nil, &proto.CodeActionParams{
		TextDocument: proto.TextDocumentIdentifier{URI: uri},
		Range:        nameRange,
		Context: proto.CodeActionContext{
			Diagnostics: []proto.Diagnostic{
				{
					Range: nameRange,
					Data: map[string]any{
						"type": UnclosedTagWarning,
						"name": "div",
					},
				},
			},
		},
	})

	if err != nil {
		t.Fatalf("CodeAction: %v", err)
	}

	list, ok := res.([]proto.CodeAction)

	if !ok || len(list) != 1 {
		t.Fatalf("expected 1 action, got %v", res)
	}

	action := list[0]

	if action.Title != "Add closing tag </div>" {
		t.Errorf("got title %q", action.Title)
	}

	edits := action.Edit.Changes[uri]

	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %v", edits)
	}

	insert := proto.Position{Line: 0, Character: 6}

	if edits[0].NewText != "</div>" || edits[0].Range.Start != insert || edits[0].Range.End != insert {
		t.Errorf("wrong edit: %v", edits[0])
	}
}
