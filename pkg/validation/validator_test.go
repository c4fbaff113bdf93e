package validation

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"

	apperrors "supermaids/pkg/errors"
)

type contact struct {
	Name     string      `validate:"required"`
	Phone    string      `validate:"required,digits"`
	Note     null.String `validate:"omitempty,max=10"`
	Quantity int         `validate:"gt=0"`
}

func TestValidator_Digits(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct("contact", contact{Name: "John", Phone: "6175551001", Quantity: 1}))

	for _, phone := range []string{"617-555-1001", "+16175551001", "617 555 1001", "61755510O1", ""} {
		err := v.Struct("contact", contact{Name: "John", Phone: phone, Quantity: 1})
		assert.ErrorIs(t, err, apperrors.ErrValidation, "телефон %q должен быть отклонён", phone)
	}
}

func TestValidator_GeneratedPhonesRejected(t *testing.T) {
	v := New()

	// faker выдаёт номера с дефисами и "+", такие хранилище тоже не примет
	for i := 0; i < 20; i++ {
		for _, phone := range []string{faker.Phonenumber(), faker.E164PhoneNumber()} {
			err := v.Struct("contact", contact{Name: faker.FirstName(), Phone: phone, Quantity: 1})
			assert.Error(t, err, phone)
		}
	}
}

func TestValidator_NullTypes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct("contact", contact{Name: "Jane", Phone: "1", Quantity: 1, Note: null.String{}}))
	assert.NoError(t, v.Struct("contact", contact{Name: "Jane", Phone: "1", Quantity: 1, Note: null.StringFrom("short")}))
	assert.Error(t, v.Struct("contact", contact{Name: "Jane", Phone: "1", Quantity: 1, Note: null.StringFrom("much too long for it")}))
}

func TestValidator_NonPositiveRejected(t *testing.T) {
	v := New()

	err := v.Struct("contact", contact{Name: "Jane", Phone: "1", Quantity: 0})
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "contact", ve.Entity)
}
