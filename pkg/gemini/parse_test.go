package gemini

import (
	"reflect"
	"testing"
)

func TestSafeParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want interface{}
	}{
		{
			name: "plain json",
			in:   `{"summary":"ok","insights":["a","b"]}`,
			want: map[string]interface{}{"summary": "ok", "insights": []interface{}{"a", "b"}},
		},
		{
			name: "json fenced",
			in:   "```json\n{\"summary\":\"ok\",\"insights\":[\"a\",\"b\"]}\n```",
			want: map[string]interface{}{"summary": "ok", "insights": []interface{}{"a", "b"}},
		},
		{
			name: "uppercase fence marker",
			in:   "```JSON\n{\"tips\":[]}\n```",
			want: map[string]interface{}{"tips": []interface{}{}},
		},
		{
			name: "bare fences",
			in:   "```\n[1,2,3]\n```",
			want: []interface{}{float64(1), float64(2), float64(3)},
		},
		{
			name: "non-json prose falls back to rawText",
			in:   "Sure! Here are some tips for you.",
			want: map[string]interface{}{"rawText": "Sure! Here are some tips for you."},
		},
		{
			name: "empty string falls back",
			in:   "",
			want: map[string]interface{}{"rawText": ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeParse(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SafeParse(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

// Fenced and unfenced forms of the same document must parse to the same
// value.
func TestSafeParseFenceRoundTrip(t *testing.T) {
	doc := `{"forecastText":"spending trending up","expectedChange":"+4%"}`
	fenced := "```json\n" + doc + "\n```"
	if !reflect.DeepEqual(SafeParse(doc), SafeParse(fenced)) {
		t.Errorf("fenced and unfenced parses differ: %#v vs %#v", SafeParse(doc), SafeParse(fenced))
	}
}
