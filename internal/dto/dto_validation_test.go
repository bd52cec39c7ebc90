package dto_test

import (
	"errors"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym-system/internal/dto"
	"gym-system/pkg/utils"
	"gym-system/pkg/validation"
)

func validate(t *testing.T, payload interface{}) validator.ValidationErrors {
	t.Helper()

	err := validation.New().Validate(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	return validationErrors
}

func TestCreateEquipmentDTO_AccumulatesAllErrors(t *testing.T) {
	errs := validate(t, &dto.CreateEquipmentDTO{})

	require.Len(t, errs, 3, "name, category and quantity must all be reported at once")

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field())
	}
	assert.ElementsMatch(t, []string{"name", "category", "quantity"}, fields)
}

func TestCreateEquipmentDTO_QuantityBelowOne(t *testing.T) {
	errs := validate(t, &dto.CreateEquipmentDTO{
		Name:     "Bench Press",
		Category: "Machines",
		Quantity: null.Float64From(-5),
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "quantity", errs[0].Field())
	assert.Contains(t, utils.ValidationMessages(errs)[0], "quantity")
}

func TestCreateEquipmentDTO_BlankNameRejected(t *testing.T) {
	errs := validate(t, &dto.CreateEquipmentDTO{
		Name:     "   ",
		Category: "Machines",
		Quantity: null.Float64From(1),
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field())
}

func TestCreateEquipmentDTO_EnumFields(t *testing.T) {
	errs := validate(t, &dto.CreateEquipmentDTO{
		Name:      "Bench Press",
		Category:  "Machines",
		Quantity:  null.Float64From(1),
		Condition: null.StringFrom("excellent"),
		Status:    null.StringFrom("broken"),
	})

	require.Len(t, errs, 2)
}

func TestCreateEquipmentDTO_Valid(t *testing.T) {
	errs := validate(t, &dto.CreateEquipmentDTO{
		Name:     "Bench Press",
		Category: "Machines",
		Quantity: null.Float64From(5),
	})

	assert.Nil(t, errs)
}

func TestUpdateEquipmentDTO_PartialPayloadValid(t *testing.T) {
	errs := validate(t, &dto.UpdateEquipmentDTO{})

	assert.Nil(t, errs, "an update may touch no fields at all")
}

func TestUpdateEquipmentDTO_PresentFieldsStillChecked(t *testing.T) {
	errs := validate(t, &dto.UpdateEquipmentDTO{
		Quantity: null.Float64From(0),
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "quantity", errs[0].Field())
}

func TestCreateMemberDTO_AccumulatesAllErrors(t *testing.T) {
	errs := validate(t, &dto.CreateMemberDTO{
		Email: "not-an-email",
		Phone: null.StringFrom("123"),
	})

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field())
	}
	assert.ElementsMatch(t, []string{"first_name", "last_name", "email", "phone", "membership_type"}, fields)
}

func TestCreateMemberDTO_Valid(t *testing.T) {
	errs := validate(t, &dto.CreateMemberDTO{
		FirstName:      "Alice",
		LastName:       "Brown",
		Email:          "alice.brown@email.com",
		Phone:          null.StringFrom("(555) 100-1001"),
		MembershipType: "premium",
	})

	assert.Nil(t, errs)
}

func TestCreateMemberDTO_MembershipTypeEnum(t *testing.T) {
	errs := validate(t, &dto.CreateMemberDTO{
		FirstName:      "Alice",
		LastName:       "Brown",
		Email:          "alice.brown@email.com",
		MembershipType: "gold",
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "membership_type", errs[0].Field())
}

func TestCreateTrainerDTO_RequiredFields(t *testing.T) {
	errs := validate(t, &dto.CreateTrainerDTO{})

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field())
	}
	assert.ElementsMatch(t, []string{"first_name", "last_name", "email", "specialization"}, fields)
}

func TestCreateTrainerDTO_Valid(t *testing.T) {
	errs := validate(t, &dto.CreateTrainerDTO{
		FirstName:      "John",
		LastName:       "Smith",
		Email:          "john.smith@gym.com",
		Specialization: "Strength Training",
		HourlyRate:     null.Float64From(75),
	})

	assert.Nil(t, errs)
}
