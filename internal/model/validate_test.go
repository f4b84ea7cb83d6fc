package model

import "testing"

func TestValidateResumeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"minimal", `{"name":"Jane"}`, false},
		{"empty object", `{}`, false},
		{"nullable fields", `{"name":null,"contact":null,"skills":null}`, false},
		{
			"full document",
			`{"name":"Jane","title":"Engineer","contact":{"email":"a@b.c"},
			  "professional_summary":"x",
			  "experience":[{"company":"Acme","responsibilities":["built"]}],
			  "education":[{"institution":"U"}],
			  "projects":[{"name":"p","technologies":["Go"]}],
			  "skills":[{"category":"Languages","skills":["Go"]}]}`,
			false,
		},
		{"wrong type for name", `{"name":123}`, true},
		{"unknown top-level key", `{"name":"Jane","salary":1}`, true},
		{"unknown nested key", `{"contact":{"fax":"123"}}`, true},
		{"responsibilities wrong item type", `{"experience":[{"responsibilities":[1]}]}`, true},
		{"not json", `{{{`, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateResumeJSON([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateResumeJSON(%s) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
