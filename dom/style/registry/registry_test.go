package registry

import (
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/pwmeter/dom/style/cssom"
	"github.com/npillmayer/pwmeter/dom/style/cssom/douceuradapter"
	r "github.com/npillmayer/pwmeter/dom/style/responsive"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formDecl() *r.Declaration {
	return &r.Declaration{Props: r.Props{
		"padding":    r.Str("20px"),
		"fontFamily": r.Str("monospace"),
		"fontSize":   r.Tiered(r.Number(20), r.Number(30), r.Number(40)),
		"color":      r.Tiered(r.Text("black"), r.Text("tomato")),
	}}
}

func TestStyleRegistersRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwmeter.style")
	defer teardown()
	//
	reg := New()
	cls := reg.Style(r.MustExpand(formDecl()))
	require.NotEmpty(t, cls)
	assert.True(t, strings.HasPrefix(cls, "f"))
	t.Logf("CSS =\n%s", reg.CSS())
	sheet := reg.StyleSheet()
	base := cssom.Find(sheet, "."+cls)
	require.NotNil(t, base, "no rule for class")
	assert.Equal(t, "20px", base.Value("font-size").String())
	assert.Equal(t, "black", base.Value("color").String())
	assert.Equal(t, "monospace", base.Value("font-family").String())
	t1 := cssom.Find(sheet, "@media screen and (min-width: 40em) ."+cls)
	require.NotNil(t, t1, "no rule for tier 1")
	assert.Equal(t, "30px", t1.Value("font-size").String())
	assert.Equal(t, "tomato", t1.Value("color").String())
	t2 := cssom.Find(sheet, "@media screen and (min-width: 52em) ."+cls)
	require.NotNil(t, t2, "no rule for tier 2")
	assert.Equal(t, "40px", t2.Value("font-size").String())
	assert.Equal(t, []string{"font-size"}, t2.Properties())
}

func TestStyleIsDeduplicated(t *testing.T) {
	reg := New()
	a := reg.Style(r.MustExpand(formDecl()))
	b := reg.Style(r.MustExpand(formDecl()))
	if a != b {
		t.Errorf("expected equivalent declarations to share a class, have %s and %s", a, b)
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 registered class, have %d", reg.Len())
	}
	c := reg.Style(r.MustExpand(&r.Declaration{Props: r.Props{"marginTop": r.Num(20)}}))
	if c == a || reg.Len() != 2 {
		t.Errorf("expected a new class for a different declaration")
	}
}

func TestStyleNestedSelectors(t *testing.T) {
	reg := New()
	cls := reg.Style(r.MustExpand(&r.Declaration{
		Props: r.Props{"width": r.Str("100%")},
		Nested: map[string]*r.Declaration{
			"&::-webkit-meter-bar": {Props: r.Props{"backgroundColor": r.Str("rgba(0, 0, 0, 0.1)")}},
			"span":                 {Props: r.Props{"marginTop": r.Num(0)}},
		},
	}))
	sheet := reg.StyleSheet()
	bar := cssom.Find(sheet, "."+cls+"::-webkit-meter-bar")
	require.NotNil(t, bar)
	assert.Equal(t, "rgba(0, 0, 0, 0.1)", bar.Value("background-color").String())
	span := cssom.Find(sheet, "."+cls+" span")
	require.NotNil(t, span)
	assert.Equal(t, "0", span.Value("margin-top").String())
}

func TestStyleNestedGroups(t *testing.T) {
	reg := New()
	cls := reg.Style(r.MustExpand(&r.Declaration{
		Nested: map[string]*r.Declaration{
			"a, b": {Nested: map[string]*r.Declaration{
				"&:hover": {Props: r.Props{"color": r.Str("red")}},
			}},
		},
	}))
	t.Logf("CSS =\n%s", reg.CSS())
	assert.Contains(t, reg.CSS(), "."+cls+" a:hover, ."+cls+" b:hover {")
	assert.Equal(t, ".c a:hover, .c b:hover", interpolate("&:hover", ".c a, .c b"))
	assert.Equal(t, ".c x, .c y, .d x, .d y", interpolate("x, y", ".c, .d"))
}

func TestStyleTiersPrecedeExplicitMedia(t *testing.T) {
	reg := New()
	reg.Style(r.MustExpand(&r.Declaration{
		Props: r.Props{"fontSize": r.Tiered(r.Number(20), r.Number(30), r.Number(40))},
		Nested: map[string]*r.Declaration{
			"@media screen and (min-width: 100em)": {Props: r.Props{"fontSize": r.Num(50)}},
		},
	}))
	out := reg.CSS()
	t.Logf("CSS =\n%s", out)
	i40 := strings.Index(out, "min-width: 40em")
	i52 := strings.Index(out, "min-width: 52em")
	i100 := strings.Index(out, "min-width: 100em")
	require.True(t, i40 >= 0 && i52 >= 0 && i100 >= 0)
	assert.True(t, i40 < i52, "tier 1 must precede tier 2")
	assert.True(t, i52 < i100, "tiers must precede explicit media queries")
}

func TestStyleMergesDeclarations(t *testing.T) {
	reg := New()
	cls := reg.Style(
		r.MustExpand(&r.Declaration{Props: r.Props{"color": r.Str("red"), "padding": r.Num(4)}}),
		nil,
		r.MustExpand(&r.Declaration{Props: r.Props{"color": r.Str("blue")}}),
	)
	rule := cssom.Find(reg.StyleSheet(), "."+cls)
	require.NotNil(t, rule)
	assert.Equal(t, "blue", rule.Value("color").String())
	assert.Equal(t, "4px", rule.Value("padding").String())
}

func TestStyleEmpty(t *testing.T) {
	reg := New()
	if cls := reg.Style(); cls != "" {
		t.Errorf("expected no class for no declarations, got %q", cls)
	}
	if cls := reg.Style(nil, r.NewExpanded()); cls != "" {
		t.Errorf("expected no class for empty declarations, got %q", cls)
	}
	if reg.Len() != 0 {
		t.Errorf("expected registry to be empty")
	}
}

func TestCSSParsesBack(t *testing.T) {
	reg := New()
	reg.Style(r.MustExpand(formDecl()))
	sheet, err := douceuradapter.Parse(reg.CSS())
	require.NoError(t, err)
	assert.Len(t, sheet.Rules(), 3)
	reg.Reset()
	assert.Equal(t, "", reg.CSS())
}

func TestStyleConcurrent(t *testing.T) {
	reg := New()
	var wg sync.WaitGroup
	classes := make([]string, 8)
	for i := range classes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			classes[i] = reg.Style(r.MustExpand(formDecl()))
		}(i)
	}
	wg.Wait()
	for _, cls := range classes[1:] {
		assert.Equal(t, classes[0], cls)
	}
	assert.Equal(t, 1, reg.Len())
}
