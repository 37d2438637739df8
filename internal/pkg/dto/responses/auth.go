package responses

type Login struct {
	Token      string `json:"token"`
	MenteeName string `json:"mentee_name"`
	Email      string `json:"email"`
}
