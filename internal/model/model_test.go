package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentHasAssociation(t *testing.T) {
	withSymbol := Comment{AssociatedSymbol: "Greet"}
	assert.True(t, withSymbol.HasAssociation())

	without := Comment{}
	assert.False(t, without.HasAssociation())
}
