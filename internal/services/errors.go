package services

// ErrorKind classifies a failed store operation. Each failing service call
// returns exactly one kind; handlers map kinds to HTTP statuses.
type ErrorKind int

const (
	// KindValidation marks a missing or out-of-range required field.
	KindValidation ErrorKind = iota
	// KindConflict marks a uniqueness or referential-integrity violation.
	KindConflict
	// KindAuth marks a credential mismatch.
	KindAuth
	// KindNotFound marks a lookup that matched no row.
	KindNotFound
)

// StoreError is the typed error raised by the service layer. Message is the
// user-facing text echoed into the response envelope.
type StoreError struct {
	Kind    ErrorKind
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

func newValidationError(message string) *StoreError {
	return &StoreError{Kind: KindValidation, Message: message}
}

func newConflictError(message string) *StoreError {
	return &StoreError{Kind: KindConflict, Message: message}
}

func newAuthError(message string) *StoreError {
	return &StoreError{Kind: KindAuth, Message: message}
}

func newNotFoundError(message string) *StoreError {
	return &StoreError{Kind: KindNotFound, Message: message}
}

// User-facing messages, kept verbatim from the frontend's expectations.
const (
	MsgEmailPasswordRequired = "Email и пароль обязательны"
	MsgEmailTaken            = "Пользователь с таким email уже существует"
	MsgInvalidCredentials    = "Неверный email или пароль"
	MsgProductIDRequired     = "ID товара обязателен"
	MsgUserIDRequired        = "ID пользователя обязателен"
	MsgProductNotFound       = "Товар не найден"
	MsgAllFieldsRequired     = "Все поля обязательны для заполнения"
	MsgStarsOutOfRange       = "Оценка должна быть от 1 до 5 звезд"
	MsgUserOrProductMissing  = "Пользователь или товар не существует"
	MsgNamePriceRequired     = "Название и цена товара обязательны"
	MsgAddressRequired       = "Адрес магазина обязателен"
)
