package domain

import "encoding/json"

// Text is a string field that tolerates malformed JSON bodies: any
// non-string value (number, object, null...) decodes to the empty string
// instead of failing the whole request, so validation can report the
// missing field with the intake's fixed message.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Text(s)
	return nil
}

func (t Text) String() string {
	return string(t)
}
