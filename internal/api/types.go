package api

// User is the session identity returned by a successful login.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// ExpenseRecord is an expense row as returned by the remote API.
// Numeric fields are pointers: the API sends null for values the user
// never filled in, and null must stay distinguishable from zero.
type ExpenseRecord struct {
	ID           int64    `json:"id"`
	DueDay       *int     `json:"dataVencimento"`
	Description  string   `json:"descricao"`
	Amount       *float64 `json:"valor"`
	AmountPaid   *float64 `json:"valorPago"`
	Installments string   `json:"parcelas"`
	// Status is what the server last stored. It is never trusted for
	// display; the client recomputes it from Amount and AmountPaid.
	Status string `json:"status"`
}

// IncomeRecord is an income row as returned by the remote API.
// Unlike expenses, income status is free text and shown verbatim.
type IncomeRecord struct {
	ID          int64    `json:"id"`
	Description string   `json:"descricao"`
	Amount      *float64 `json:"valor"`
	Status      string   `json:"status"`
}

// ExpensePayload is the body for expense create/update requests.
// Mes and Ano are only stamped on creates; updates leave them zero
// and omitted.
type ExpensePayload struct {
	DueDay       int      `json:"dataVencimento"`
	Description  string   `json:"descricao"`
	Amount       float64  `json:"valor"`
	AmountPaid   *float64 `json:"valorPago"`
	Installments string   `json:"parcelas"`
	Status       string   `json:"status"`
	Month        int      `json:"mes,omitempty"`
	Year         int      `json:"ano,omitempty"`
}

// IncomePayload is the body for income create/update requests.
type IncomePayload struct {
	Description string  `json:"descricao"`
	Amount      float64 `json:"valor"`
	Status      string  `json:"status"`
	Month       int     `json:"mes,omitempty"`
	Year        int     `json:"ano,omitempty"`
}
