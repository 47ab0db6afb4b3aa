package ai

import "testing"

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "no markup here", want: "no markup here"},
		{name: "simple tags", in: "<p>hello</p>", want: "hello"},
		{name: "attributes", in: `<a href="x">link</a> text`, want: "link text"},
		{name: "nested markup", in: "<div><b>bold</b> and <i>italic</i></div>", want: "bold and italic"},
		{name: "unclosed tag", in: "trailing <br", want: "trailing "},
		{name: "only markup", in: "<p></p><br/>", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.in); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fence", in: `{"isToxic": true}`, want: `{"isToxic": true}`},
		{name: "json fence", in: "```json\n{\"isToxic\": true}\n```", want: `{"isToxic": true}`},
		{name: "bare fence", in: "```\n{\"isToxic\": false}\n```", want: `{"isToxic": false}`},
		{name: "single line fence", in: "```{\"isToxic\": true}```", want: `{"isToxic": true}`},
		{name: "surrounding whitespace", in: "  ```json\n{}\n```  ", want: "{}"},
		{name: "payload on fence line", in: "```{\"a\": 1}\n```", want: `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.in); got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
