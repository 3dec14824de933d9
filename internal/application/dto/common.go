package dto

// ErrorResponse corpo de erro HTTP: {"error": "<mensagem>"}. Formato
// único para todos os endpoints, esperado pelo frontend.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse corpo devolvido pelos DELETEs.
type SuccessResponse struct {
	Success bool `json:"success"`
}
