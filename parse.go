package initdata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cybergodev/initdata/internal/query"
)

// Parameters always decoded as strings even when their value happens to be
// valid JSON (a start_param of "123" or "true" must stay textual).
var stringProps = map[string]bool{
	"start_param": true,
}

// Parse converts an init data query string into an InitData value. It does
// not authenticate anything; run Validate or ValidateThirdParty first and
// parse only strings that passed.
//
// Scalar parameters whose values are valid JSON (numbers, booleans) and
// embedded objects such as user and chat are decoded as such; everything
// else is taken as a string. Duplicate keys collapse to the last occurrence.
func Parse(initData string) (*InitData, error) {
	if err := checkFormat(initData); err != nil {
		return nil, err
	}

	params := query.Collect(query.Parse(initData))

	// Reassemble the parameter set as a single JSON object and decode it
	// into the model in one pass.
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for key, value := range params {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		if !stringProps[key] && json.Valid([]byte(value)) {
			buf.WriteString(value)
			continue
		}

		valueJSON, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')

	var data InitData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}

	if data.AuthDate.IsZero() {
		return nil, ErrAuthDateMissing
	}

	return &data, nil
}
