package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spanTexts(spans []Span, label Label) []string {
	var out []string
	for _, s := range spans {
		if s.Label == label {
			out = append(out, s.Text)
		}
	}
	return out
}

func TestGazetteerRecognizerPlaces(t *testing.T) {
	rec := NewGazetteerRecognizer([]string{"Jaipur", "Udaipur", "Rajasthan"})

	tests := []struct {
		name  string
		text  string
		wants []string
	}{
		{
			name:  "single place",
			text:  "Which colleges are in Jaipur?",
			wants: []string{"jaipur"},
		},
		{
			name:  "two places appearance order",
			text:  "colleges in Udaipur or Jaipur",
			wants: []string{"udaipur", "jaipur"},
		},
		{
			name:  "case insensitive",
			text:  "fees in JAIPUR",
			wants: []string{"jaipur"},
		},
		{
			name:  "no places",
			text:  "what is the fee for btech",
			wants: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spanTexts(rec.Recognize(tt.text), LabelPlace)
			assert.Equal(t, tt.wants, got)
		})
	}
}

func TestGazetteerRecognizerMultiWordPlace(t *testing.T) {
	rec := NewGazetteerRecognizer([]string{"Uttar Pradesh", "Pradesh"})

	spans := rec.Recognize("colleges in Uttar Pradesh")
	places := spanTexts(spans, LabelPlace)

	// The longer gazetteer entry wins over its suffix token.
	require.NotEmpty(t, places)
	assert.Contains(t, places, "uttar pradesh")
}

func TestGazetteerRecognizerOrgSpans(t *testing.T) {
	rec := NewGazetteerRecognizer(nil)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "marker with of extension",
			text: "Tell me about Rajasthan Institute of Engineering",
			want: "rajasthan institute of engineering",
		},
		{
			name: "marker window",
			text: "fees at Sunrise Polytechnic College",
			want: "sunrise polytechnic college",
		},
		{
			name: "capitalized run",
			text: "do you know Modern Arts Campus",
			want: "modern arts campus",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spanTexts(rec.Recognize(tt.text), LabelOrg)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestGazetteerRecognizerOrgRunTrimsConnectors(t *testing.T) {
	rec := NewGazetteerRecognizer(nil)

	// "The" joins the run but a trailing connector is trimmed.
	got := spanTexts(rec.Recognize("I heard The Modern Academy Of is near"), LabelOrg)
	assert.Contains(t, got, "the modern academy")
}

func TestGazetteerRecognizerSpanOrder(t *testing.T) {
	rec := NewGazetteerRecognizer([]string{"Jaipur"})

	spans := rec.Recognize("In Jaipur the Sunrise Polytechnic College campus")
	require.NotEmpty(t, spans)
	for i := 1; i < len(spans); i++ {
		assert.LessOrEqual(t, spans[i-1].Start, spans[i].Start)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t,
		[]string{"what", "is", "the", "fee", "range"},
		Tokens("What is the fee range?"))
	assert.Empty(t, Tokens("  ,,  "))
}
