package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestKoreanPhoneValidation(t *testing.T) {
	v := newValidator(t)
	type payload struct {
		Phone string `validate:"kr_phone"`
	}

	assert.NoError(t, v.Struct(payload{Phone: "010-1234-5678"}))
	assert.NoError(t, v.Struct(payload{Phone: "01012345678"}))
	assert.NoError(t, v.Struct(payload{Phone: "016-123-4567"}))
	assert.Error(t, v.Struct(payload{Phone: "02-123-4567"}))
	assert.Error(t, v.Struct(payload{Phone: "010-12-34"}))
	assert.Error(t, v.Struct(payload{Phone: ""}))
}

func TestHTTPURLOrEmptyValidation(t *testing.T) {
	v := newValidator(t)
	type payload struct {
		Link string `validate:"http_url_or_empty"`
	}

	assert.NoError(t, v.Struct(payload{Link: ""}))
	assert.NoError(t, v.Struct(payload{Link: "https://cafe.example/post/1"}))
	assert.Error(t, v.Struct(payload{Link: "ftp://files.example"}))
	assert.Error(t, v.Struct(payload{Link: "not a url"}))
}

func TestOrderStatusValidation(t *testing.T) {
	v := newValidator(t)
	type payload struct {
		Status string `validate:"order_status"`
	}

	assert.NoError(t, v.Struct(payload{Status: "대기중"}))
	assert.NoError(t, v.Struct(payload{Status: "불가능답변(X)"}))
	assert.Error(t, v.Struct(payload{Status: "없는상태"}))
}

func TestRecipientAndDesignationValidation(t *testing.T) {
	v := newValidator(t)
	type payload struct {
		Recipient       string `validate:"recipient"`
		DesignationType string `validate:"designation_type"`
	}

	assert.NoError(t, v.Struct(payload{Recipient: "업체+고객", DesignationType: "공동구매"}))
	assert.Error(t, v.Struct(payload{Recipient: "아무나", DesignationType: "공동구매"}))
	assert.Error(t, v.Struct(payload{Recipient: "고객", DesignationType: "임의지정"}))
}
