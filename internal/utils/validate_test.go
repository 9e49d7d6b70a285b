package utils_test

import (
	"testing"

	"github.com/quotery/quotes-api/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestValidateFields(t *testing.T) {
	t.Run("Nil values pass", func(t *testing.T) {
		err := utils.ValidateFields([]utils.Field{
			{Value: nil, Label: "Username"},
			{Value: nil, Label: "Password"},
		})
		assert.NoError(t, err)
	})

	t.Run("Non-empty strings pass", func(t *testing.T) {
		err := utils.ValidateFields([]utils.Field{
			{Value: "alice", Label: "Username"},
		})
		assert.NoError(t, err)
	})

	t.Run("Empty string fails with the field label", func(t *testing.T) {
		err := utils.ValidateFields([]utils.Field{
			{Value: "", Label: "Content"},
		})
		assert.EqualError(t, err, "Content is in the wrong format or empty")
	})

	t.Run("Wrong type fails", func(t *testing.T) {
		err := utils.ValidateFields([]utils.Field{
			{Value: 42, Label: "Language"},
		})
		assert.EqualError(t, err, "Language is in the wrong format or empty")
	})

	t.Run("First failing field wins", func(t *testing.T) {
		err := utils.ValidateFields([]utils.Field{
			{Value: "fine", Label: "Username"},
			{Value: "", Label: "Password"},
			{Value: 1, Label: "Role"},
		})
		assert.EqualError(t, err, "Password is in the wrong format or empty")
	})
}

func TestParseID(t *testing.T) {
	t.Run("Positive integers", func(t *testing.T) {
		id, err := utils.ParseID("42")
		assert.NoError(t, err)
		assert.Equal(t, uint(42), id)
	})

	t.Run("Rejects zero and negatives", func(t *testing.T) {
		_, err := utils.ParseID("0")
		assert.Error(t, err)

		_, err = utils.ParseID("-7")
		assert.Error(t, err)
	})

	t.Run("Rejects non-numeric input", func(t *testing.T) {
		_, err := utils.ParseID("abc")
		assert.Error(t, err)

		_, err = utils.ParseID("3.5")
		assert.Error(t, err)
	})
}
