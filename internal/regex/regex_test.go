package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "drops english acceptance criteria",
			in:   "Login fails.\nAcceptance criteria:\n- user can log in",
			want: "Login fails.\n",
		},
		{
			name: "drops spanish acceptance criteria",
			in:   "Falla el login.\nCriterio de aceptación:\n- el usuario entra",
			want: "Falla el login.\n",
		},
		{
			name: "drops code blocks",
			in:   "Stack:\n{code:java}\nNullPointerException\n{code}\nafter upgrade",
			want: "Stack:\n\nafter upgrade",
		},
		{
			name: "collapses blank lines",
			in:   "a\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "keeps plain descriptions",
			in:   "Nothing to strip",
			want: "Nothing to strip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDescription(tt.in))
		})
	}
}

func TestToSlackMrkdwn(t *testing.T) {
	assert.Equal(t, "*Status*\nThe fix is *merged*.", ToSlackMrkdwn("## Status\nThe fix is **merged**."))
	assert.Equal(t, "plain\n", ToSlackMrkdwn("```\nplain\n```"))
	assert.Equal(t, "no markup", ToSlackMrkdwn("no markup"))
}
