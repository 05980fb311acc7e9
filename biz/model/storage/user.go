package storage

import "smartparking/be/biz/model/domain"

type UserRecord struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre   string `gorm:"column:nombre;size:100;not null"`
	Apellido string `gorm:"column:apellido;size:100;not null"`
	Cedula   string `gorm:"column:cedula;size:20;not null;uniqueIndex"` // 唯一身份证号
	Telefono string `gorm:"column:telefono;size:20"`
	Correo   string `gorm:"column:correo;size:100;not null;uniqueIndex"` // 唯一登录邮箱
	Password string `gorm:"column:contraseña;size:255;not null"`
}

func (UserRecord) TableName() string {
	return "usuarios"
}

// UserColumns maps each updatable field to its column. Fields missing here
// can never reach a SET clause.
var UserColumns = map[domain.Field]string{
	domain.FieldNombre:   "nombre",
	domain.FieldApellido: "apellido",
	domain.FieldCedula:   "cedula",
	domain.FieldTelefono: "telefono",
	domain.FieldCorreo:   "correo",
	domain.FieldPassword: "contraseña",
}
