package domain

type User struct {
	ID       uint64
	Nombre   string
	Apellido string
	Cedula   string
	Telefono string
	Correo   string
	// PasswordHash is the salted one-way hash, never the plaintext.
	PasswordHash string
}

// Field enumerates the user attributes a partial update may touch.
type Field int

const (
	FieldNombre Field = iota + 1
	FieldApellido
	FieldCedula
	FieldTelefono
	FieldCorreo
	FieldPassword
)

func (f Field) String() string {
	switch f {
	case FieldNombre:
		return "nombre"
	case FieldApellido:
		return "apellido"
	case FieldCedula:
		return "cedula"
	case FieldTelefono:
		return "telefono"
	case FieldCorreo:
		return "correo"
	case FieldPassword:
		return "contraseña"
	}
	return "unknown"
}

// Fields holds the values of a partial update.
type Fields map[Field]string
