package convert

import (
	"encoding/json"
	"testing"

	"smartparking/be/biz/model/domain"
	"smartparking/be/biz/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestUserDomainToResp_DropsPassword(t *testing.T) {
	u := &domain.User{ID: 7, Nombre: "A", Correo: "a@x.com", PasswordHash: "$2a$10$hash"}

	b, err := json.Marshal(UsersDomainToResp([]*domain.User{u}))
	assert.NoError(t, err)
	assert.NotContains(t, string(b), "contraseña")
	assert.NotContains(t, string(b), "$2a$10$hash")
	assert.Contains(t, string(b), `"correo":"a@x.com"`)
}

func TestUpdateReqToFields(t *testing.T) {
	nombre, pwd, confirm := "Ana", "secret", "secret"
	fields := UpdateReqToFields(&dto.UpdateReq{Nombre: &nombre, Password: &pwd, Confirmar: &confirm})

	assert.Equal(t, domain.Fields{domain.FieldNombre: "Ana"}, fields)
}

func TestFieldsToColumns(t *testing.T) {
	cols := FieldsToColumns(domain.Fields{
		domain.FieldCorreo:   "b@x.com",
		domain.FieldPassword: "hash",
		domain.Field(99):     "ignored",
	})

	assert.Equal(t, map[string]any{"correo": "b@x.com", "contraseña": "hash"}, cols)
}
