package linkctl

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/openconfig/gnmi/errdiff"
)

func TestParseCEREGErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{"not a notification", "AT+CFUN=1\r\n", "not a +CEREG notification"},
		{"wrong notification", "+CSCON: 1\r\n", "not a +CEREG notification"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCEREG(lineTokens(t, tt.line))
			if diff := errdiff.Substring(err, tt.wantErr); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestRespOK(t *testing.T) {
	cases := []struct {
		resp []byte
		want bool
	}{
		{[]byte("\r\nOK\r\n"), true},
		{[]byte("\r\nERROR\r\n"), false},
		{[]byte("\r\n+CME ERROR: 3\r\n"), false},
		{[]byte("no resp tail at all"), true},
	}
	for _, c := range cases {
		got := respOK(c.resp)
		if got != c.want {
			t.Errorf("respOK(%q) mismatch:\n%s", c.resp, pretty.Compare(c.want, got))
		}
	}
}
