package utils

import (
	"sync"
	"testing"
)

func TestUriHelpers(t *testing.T) {
	list := []struct {
		Uri  string
		Path string
	}{
		{Uri: "file:///root/index.html", Path: "/root/index.html"},
		{Uri: "/root/index.html", Path: "/root/index.html"},
		{Uri: "file:///root/with%20space.html", Path: "/root/with space.html"},
	}

	for i, item := range list {
		path, err := UriToPath(item.Uri)

		if err != nil {
			t.Errorf("%d - UriToPath: %v", i+1, err)
			continue
		}

		if path != item.Path {
			t.Errorf("%d - got %s, expected %s", i+1, path, item.Path)
		}
	}

	if ToUri("/root/index.html") != "file:///root/index.html" {
		t.Error("ToUri must add the file scheme")
	}

	uri, err := NormalizeUri("/root/index.html")

	if err != nil || uri != "file:///root/index.html" {
		t.Errorf("NormalizeUri got %s, %v", uri, err)
	}
}

func TestExt(t *testing.T) {
	list := []struct {
		Path string
		Ext  string
	}{
		{Path: "index.html", Ext: "html"},
		{Path: "/root/page.xhtml", Ext: "xhtml"},
		{Path: "no-ext", Ext: ""},
	}

	for i, item := range list {
		if ext := Ext(item.Path); ext != item.Ext {
			t.Errorf("%d - got %s, expected %s", i+1, ext, item.Ext)
		}
	}
}

func TestNodeHelpers(t *testing.T) {
	tree, err := GetParser().Parse([]byte("<div><span>x</span></div>"))

	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	root := tree.RootNode()
	div := root.NamedChild(0)

	if !IsElement(div) {
		t.Fatalf("expected element, got %s", div.Type())
	}

	start := GetChildByType(div, "start_tag")

	if !IsStartTag(start) {
		t.Fatal("expected start_tag child")
	}

	name := GetChildByType(start, "tag_name")

	if !IsTagName(name) {
		t.Fatal("expected tag_name child")
	}

	if GetClosestNode(name, "element") == nil {
		t.Error("GetClosestNode must climb to the element")
	}

	if GetChildByType(div, "end_tag") == nil {
		t.Error("expected end_tag child")
	}
}

func TestParserPoolConcurrent(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 20; j++ {
				_, err := GetParser().Parse([]byte("<div><span>x</span></div>"))

				if err != nil {
					t.Errorf("Parse: %v", err)
					return
				}
			}
		}()
	}

	wg.Wait()
}

func TestErrorNodesIter(t *testing.T) {
	tree, err := GetParser().Parse([]byte("<div attr=></div>"))

	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	root := tree.RootNode()

	if !root.HasError() {
		t.Skip("grammar accepts the input")
	}

	count := 0

	for range GetErrorNodesIter(root) {
		count++
	}

	if count == 0 {
		t.Error("expected at least one error node")
	}
}
