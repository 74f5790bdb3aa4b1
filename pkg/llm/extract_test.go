package llm

import "testing"

func TestExtractPayload(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain_prose_untouched",
			in:   "  Namaste! The best time to visit Jaipur is October to March.  ",
			want: "Namaste! The best time to visit Jaipur is October to March.",
		},
		{
			name: "fenced_json_object",
			in:   "Here is the result:\n```json\n{\"a\":1}\n```\nHope that helps!",
			want: `{"a":1}`,
		},
		{
			name: "bare_object_with_surrounding_prose",
			in:   `Sure thing. {"fare_estimate_inr":"₹120 – ₹180"} Let me know if you need more.`,
			want: `{"fare_estimate_inr":"₹120 – ₹180"}`,
		},
		{
			name: "array_payload",
			in:   "The itinerary:\n[{\"day\":1,\"title\":\"Old Delhi\"}]\nEnjoy your trip.",
			want: `[{"day":1,"title":"Old Delhi"}]`,
		},
		{
			name: "unmatched_open_brace_falls_back",
			in:   "something went wrong { and the model stopped",
			want: "something went wrong { and the model stopped",
		},
		{
			name: "closing_before_opening_falls_back",
			in:   "} oops {",
			want: "} oops {",
		},
		{
			name: "multiple_json_substrings_span_both",
			in:   `{"a":1} and also {"b":2}`,
			want: `{"a":1} and also {"b":2}`,
		},
		{
			name: "object_inside_array_prefers_earliest_opener",
			in:   `ignore [ {"day":1} ] trailing`,
			want: `[ {"day":1} ]`,
		},
		{
			name: "fence_without_json_tag_still_bracket_matched",
			in:   "```\n{\"x\":true}\n```",
			want: `{"x":true}`,
		},
		{
			name: "empty_input",
			in:   "   ",
			want: "",
		},
		{
			name: "pure_json_identity",
			in:   `{"explanation":"Light dish","suggestions":["Add dal"]}`,
			want: `{"explanation":"Light dish","suggestions":["Add dal"]}`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractPayload(tc.in); got != tc.want {
				t.Fatalf("ExtractPayload(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractPayloadNeverTruncatesProse(t *testing.T) {
	t.Parallel()
	in := "Use the metro, it is cheap and safe. Auto rickshaws are fine too."
	if got := ExtractPayload(in); got != in {
		t.Fatalf("prose was altered: %q", got)
	}
}
