package convert

import (
	"smartparking/be/biz/model/domain"
	"smartparking/be/biz/model/dto"
	"smartparking/be/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Cedula:   u.Cedula,
		Telefono: u.Telefono,
		Correo:   u.Correo,
		Password: u.PasswordHash,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:           m.ID,
		Nombre:       m.Nombre,
		Apellido:     m.Apellido,
		Cedula:       m.Cedula,
		Telefono:     m.Telefono,
		Correo:       m.Correo,
		PasswordHash: m.Password,
	}
}

// FieldsToColumns keeps only allow-listed fields.
func FieldsToColumns(fields domain.Fields) map[string]any {
	columns := make(map[string]any, len(fields))
	for f, v := range fields {
		col, ok := storage.UserColumns[f]
		if !ok {
			continue
		}
		columns[col] = v
	}
	return columns
}

// UserDomainToResp drops the password hash.
func UserDomainToResp(u *domain.User) dto.UserResp {
	return dto.UserResp{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Cedula:   u.Cedula,
		Telefono: u.Telefono,
		Correo:   u.Correo,
	}
}

func UsersDomainToResp(users []*domain.User) []dto.UserResp {
	out := make([]dto.UserResp, 0, len(users))
	for _, u := range users {
		out = append(out, UserDomainToResp(u))
	}
	return out
}

func UpdateReqToFields(req *dto.UpdateReq) domain.Fields {
	fields := domain.Fields{}
	set := func(f domain.Field, v *string) {
		if v != nil {
			fields[f] = *v
		}
	}
	set(domain.FieldNombre, req.Nombre)
	set(domain.FieldApellido, req.Apellido)
	set(domain.FieldCedula, req.Cedula)
	set(domain.FieldTelefono, req.Telefono)
	set(domain.FieldCorreo, req.Correo)
	return fields
}
