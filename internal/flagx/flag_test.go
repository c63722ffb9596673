package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-a", "-idp", "-t"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate value form",
			args: []string{"-a", "http://api:8080/rest/admin-ui", "-v"},
			want: []string{"-a", "http://api:8080/rest/admin-ui"},
		},
		{
			name: "equals form",
			args: []string{"-idp=http://idp:9080", "-unknown", "x"},
			want: []string{"-idp=http://idp:9080"},
		},
		{
			name: "mixed allowed flags keep order",
			args: []string{"-t", "15", "-x", "1", "-a", "http://api:8080"},
			want: []string{"-t", "15", "-a", "http://api:8080"},
		},
		{
			name: "flag at end without value",
			args: []string{"-idp"},
			want: []string{"-idp"},
		},
		{
			name: "next dash token is not consumed as value",
			args: []string{"-a", "-t", "15"},
			want: []string{"-a", "-t", "15"},
		},
		{
			name: "positional arguments dropped",
			args: []string{"provision", "-t", "15"},
			want: []string{"-t", "15"},
		},
		{
			name: "nothing allowed",
			args: []string{"-c", "conf.json", "--verbose"},
			want: []string{},
		},
		{
			name: "repeated flag preserved",
			args: []string{"-t", "5", "-t", "15"},
			want: []string{"-t", "5", "-t", "15"},
		},
		{
			name: "empty input",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short flag", []string{"bankoffice", "-c", "bank.json"}, "bank.json"},
		{"long flag", []string{"bankoffice", "-config", "/etc/bankoffice.json"}, "/etc/bankoffice.json"},
		{"equals form", []string{"bankoffice", "-config=alt.json"}, "alt.json"},
		{"absent", []string{"bankoffice", "-a", "http://api:8080"}, ""},
		{"last occurrence wins", []string{"bankoffice", "-c", "one.json", "-config", "two.json"}, "two.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
