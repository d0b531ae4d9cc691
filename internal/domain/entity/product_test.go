package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Visible(t *testing.T) {
	draft := true
	published := false

	tests := []struct {
		name    string
		product *Product
		want    bool
	}{
		{"approved published", &Product{Approved: true}, true},
		{"approved with explicit false draft", &Product{Approved: true, IsDraft: &published}, true},
		{"not approved", &Product{Approved: false}, false},
		{"draft", &Product{Approved: true, IsDraft: &draft}, false},
		{"soft deleted", &Product{Approved: true, Deleted: true}, false},
		{"nil product", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.Visible())
		})
	}
}
