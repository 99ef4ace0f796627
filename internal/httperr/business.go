package httperr

import "errors"

// BusinessError carrega um código estável de violação de regra de
// negócio (slot_already_booked, invalid_state, ...). Quem atende HTTP
// traduz o código em status e mensagem.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness cria o erro a partir do código.
func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// BusinessCode extrai o código quando err (ou algo embrulhado nele) é
// uma violação de regra de negócio.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// IsBusiness informa se err representa a violação identificada por code.
func IsBusiness(err error, code string) bool {
	got, ok := BusinessCode(err)
	return ok && got == code
}
