package validators

import "regexp"

var (
	// XXX.XXX.XXX-XX
	cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

	// (XX) XXXXX-XXXX
	mobilePattern = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)

	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func IsCPFFormatValid(cpf string) bool {
	return cpfPattern.MatchString(cpf)
}

func IsMobileFormatValid(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

func IsEmailFormatValid(email string) bool {
	return emailPattern.MatchString(email)
}
