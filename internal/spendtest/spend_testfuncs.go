package spendtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
)

// ========== MIDDLEWARE ==========

func headerJSON(req *http.Request) *http.Request {
	req.Header.Set("Content-Type", "application/json")
	return req
}

func requireToken(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", token))
	return req
}

// USER AUTH

func Signup(username, email, password string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"username":"%v","email":"%v","password":"%v"}`, username, email, password))
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", payload)
	return headerJSON(req)
}

func Signin(email, password string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"email":"%v","password":"%v"}`, email, password))
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", payload)
	return headerJSON(req)
}

func DeleteUser(token, password string) *http.Request {
	payload := strings.NewReader(fmt.Sprintf(`{"password":"%v"}`, password))
	req := httptest.NewRequest(http.MethodDelete, "/api/users", payload)
	return headerJSON(requireToken(req, token))
}

// ADMIN

func DeleteAllUsers() *http.Request {
	return httptest.NewRequest(http.MethodPost, "/admin/reset", nil)
}

func GetUserCount() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin/users/count", nil)
	return headerJSON(req)
}

// USER -> EXPENSE CRUD

func ListExpenses(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	return headerJSON(requireToken(req, token))
}

// CreateExpense takes the payload preformatted as JSON so callers can
// leave out optional fields entirely.
func CreateExpense(token, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/expenses", strings.NewReader(body))
	return headerJSON(requireToken(req, token))
}

func UpdateExpense(token string, expenseID int64, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/expenses/%v", expenseID), strings.NewReader(body))
	return headerJSON(requireToken(req, token))
}

func DeleteExpense(token string, expenseID int64) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/expenses/%v", expenseID), nil)
	return headerJSON(requireToken(req, token))
}
