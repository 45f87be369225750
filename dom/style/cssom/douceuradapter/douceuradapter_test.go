package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/pwmeter/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

var sheetText = `
.f1 {
  padding: 20px;
  font-size: 20px !important;
}
@media screen and (min-width: 40em) {
  .f1 {
    font-size: 30px;
  }
}
`

func TestParseRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwmeter.style")
	defer teardown()
	//
	sheet, err := Parse(sheetText)
	if err != nil {
		t.Fatal(err)
	}
	rules := sheet.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, have %d", len(rules))
	}
	if rules[0].Selector() != ".f1" || rules[0].Value("padding") != "20px" {
		t.Errorf("unexpected first rule %q: padding=%q", rules[0].Selector(), rules[0].Value("padding"))
	}
	if !rules[0].IsImportant("font-size") {
		t.Error("expected font-size to be important")
	}
	if !rules[1].IsAtRule() || rules[1].Selector() != "@media screen and (min-width: 40em)" {
		t.Errorf("expected second rule to be a media query, is %q", rules[1].Selector())
	}
	r := cssom.Find(sheet, "@media screen and (min-width: 40em) .f1")
	if r == nil {
		t.Fatal("expected to find nested rule for .f1")
	}
	if r.Value("font-size") != "30px" {
		t.Errorf("expected nested font-size to be 30px, is %q", r.Value("font-size"))
	}
}

func TestAppendRules(t *testing.T) {
	a, _ := Parse(".a { color: red; }")
	b, _ := Parse(".b { color: blue; }")
	a.AppendRules(b)
	if len(a.Rules()) != 2 {
		t.Errorf("expected 2 rules after append, have %d", len(a.Rules()))
	}
	if !strings.Contains(a.String(), ".b {") {
		t.Errorf("expected CSS text to contain rule .b, is\n%s", a.String())
	}
}

func TestExtractStyleElements(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><head><style>.x { margin: 0; }</style></head>
<body><div id="app"></div><style>.y { margin: 1px; }</style></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	sheets := ExtractStyleElements(doc)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 style elements, found %d", len(sheets))
	}
	if sheets[1].Rules()[0].Value("margin") != "1px" {
		t.Errorf("expected .y to have margin 1px")
	}
}

func TestWalkRules(t *testing.T) {
	sheet, err := Parse(sheetText)
	if err != nil {
		t.Fatal(err)
	}
	var selectors []string
	cssom.Walk(sheet, func(sel string, r cssom.Rule) {
		selectors = append(selectors, sel)
	})
	expected := ".f1|@media screen and (min-width: 40em) .f1"
	if strings.Join(selectors, "|") != expected {
		t.Errorf("expected walk to visit %q, visited %q", expected, selectors)
	}
}
