package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// registerLedgerSteps registers domain steps covering auth, resource setup
// and the consolidated ledger view.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, iLogInAsWithPassword)
	ctx.Step(`^I have an account named "([^"]*)"$`, iHaveAnAccountNamed)
	ctx.Step(`^I have a credit card "([^"]*)" closing on day (\d+) and due on day (\d+)$`, iHaveACreditCard)
	ctx.Step(`^I create an? (paid|unpaid) (expense|income) "([^"]*)" of "([^"]*)" on "([^"]*)" charged to card "([^"]*)"$`, iCreateACardTransaction)
	ctx.Step(`^I create an? (paid|unpaid) (expense|income) "([^"]*)" of "([^"]*)" on "([^"]*)"$`, iCreateATransaction)
	ctx.Step(`^I request the ledger in "([^"]*)" mode$`, iRequestTheLedgerInMode)
	ctx.Step(`^the ledger should have (\d+) entries$`, theLedgerShouldHaveEntries)
	ctx.Step(`^the ledger should contain a virtual invoice for "([^"]*)" due "([^"]*)" with amount "([^"]*)"$`, theLedgerShouldContainAVirtualInvoice)
	ctx.Step(`^the ledger should not contain virtual entries$`, theLedgerShouldNotContainVirtualEntries)
	ctx.Step(`^I settle the invoice of "([^"]*)" due "([^"]*)" from account "([^"]*)"$`, iSettleTheInvoice)
}

// postJSON marshals the payload, sends it and fails on unexpected status.
func (tc *TestContext) postJSON(endpoint string, payload map[string]any, wantStatus int) (map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	if err := tc.doRequest(http.MethodPost, endpoint, body); err != nil {
		return nil, err
	}
	if tc.response.StatusCode != wantStatus {
		return nil, fmt.Errorf("expected status %d on %s, got %d. Body: %s",
			wantStatus, endpoint, tc.response.StatusCode, string(tc.responseBody))
	}
	return tc.parseResponse()
}

func aRegisteredUserWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	data, err := tc.postJSON("/api/v1/auth/register", map[string]any{
		"email":    email,
		"name":     "Test User",
		"password": password,
	}, http.StatusCreated)
	if err != nil {
		return err
	}

	tc.accessToken, _ = data["access_token"].(string)
	tc.refreshToken, _ = data["refresh_token"].(string)
	if tc.accessToken == "" {
		return fmt.Errorf("registration did not return an access token. Body: %s", string(tc.responseBody))
	}
	return nil
}

func iLogInAsWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	// Deliberately not using postJSON: login failures are asserted by
	// the scenario itself via response steps.
	body, err := json.Marshal(map[string]any{"email": email, "password": password})
	if err != nil {
		return err
	}
	tc.accessToken = ""
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/login", body); err != nil {
		return err
	}
	if tc.response.StatusCode == http.StatusOK {
		data, err := tc.parseResponse()
		if err != nil {
			return err
		}
		tc.accessToken, _ = data["access_token"].(string)
		tc.refreshToken, _ = data["refresh_token"].(string)
	}
	return nil
}

func iHaveAnAccountNamed(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	data, err := tc.postJSON("/api/v1/accounts", map[string]any{
		"name": name,
		"type": "checking",
	}, http.StatusCreated)
	if err != nil {
		return err
	}

	id, _ := data["id"].(string)
	if id == "" {
		return fmt.Errorf("account creation did not return an id. Body: %s", string(tc.responseBody))
	}
	tc.accountIDs[name] = id
	return nil
}

func iHaveACreditCard(ctx context.Context, name string, closingDay, dueDay int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	data, err := tc.postJSON("/api/v1/credit-cards", map[string]any{
		"name":         name,
		"closing_day":  closingDay,
		"due_day":      dueDay,
		"limit_amount": 5000,
	}, http.StatusCreated)
	if err != nil {
		return err
	}

	id, _ := data["id"].(string)
	if id == "" {
		return fmt.Errorf("card creation did not return an id. Body: %s", string(tc.responseBody))
	}
	tc.cardIDs[name] = id
	return nil
}

func iCreateATransaction(ctx context.Context, paidState, txnType, description, amount, date string) error {
	return createTransaction(ctx, paidState, txnType, description, amount, date, "")
}

func iCreateACardTransaction(ctx context.Context, paidState, txnType, description, amount, date, cardName string) error {
	return createTransaction(ctx, paidState, txnType, description, amount, date, cardName)
}

func createTransaction(ctx context.Context, paidState, txnType, description, amount, date, cardName string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var amountValue float64
	if _, err := fmt.Sscanf(amount, "%f", &amountValue); err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	payload := map[string]any{
		"description": description,
		"amount":      amountValue,
		"type":        txnType,
		"date":        date,
		"is_paid":     paidState == "paid",
	}
	if cardName != "" {
		cardID, ok := tc.cardIDs[cardName]
		if !ok {
			return fmt.Errorf("unknown card %q in scenario", cardName)
		}
		payload["credit_card_id"] = cardID
	}

	_, err := tc.postJSON("/api/v1/transactions", payload, http.StatusCreated)
	return err
}

func iRequestTheLedgerInMode(ctx context.Context, mode string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(http.MethodGet, "/api/v1/ledger?mode="+mode, nil)
}

// ledgerEntries extracts the entries array from the last ledger response.
func (tc *TestContext) ledgerEntries() ([]map[string]interface{}, error) {
	data, err := tc.parseResponse()
	if err != nil {
		return nil, err
	}

	raw, ok := data["entries"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("ledger response has no entries array. Body: %s", string(tc.responseBody))
	}

	entries := make([]map[string]interface{}, 0, len(raw))
	for _, e := range raw {
		entry, ok := e.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected ledger entry shape: %v", e)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func theLedgerShouldHaveEntries(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	entries, err := tc.ledgerEntries()
	if err != nil {
		return err
	}
	if len(entries) != count {
		return fmt.Errorf("expected %d ledger entries, got %d. Body: %s", count, len(entries), string(tc.responseBody))
	}
	return nil
}

func theLedgerShouldContainAVirtualInvoice(ctx context.Context, cardName, dueDate, amount string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	cardID, ok := tc.cardIDs[cardName]
	if !ok {
		return fmt.Errorf("unknown card %q in scenario", cardName)
	}
	wantID := "virtual-invoice-" + cardID + "-" + dueDate

	entries, err := tc.ledgerEntries()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry["id"] != wantID {
			continue
		}
		if entry["is_virtual"] != true {
			return fmt.Errorf("entry %s is not marked virtual", wantID)
		}
		if entry["amount"] != amount {
			return fmt.Errorf("virtual invoice %s: expected amount %s, got %v", wantID, amount, entry["amount"])
		}
		if entry["date"] != dueDate {
			return fmt.Errorf("virtual invoice %s: expected date %s, got %v", wantID, dueDate, entry["date"])
		}
		return nil
	}
	return fmt.Errorf("virtual invoice %s not found in ledger. Body: %s", wantID, string(tc.responseBody))
}

func theLedgerShouldNotContainVirtualEntries(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	entries, err := tc.ledgerEntries()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry["is_virtual"] == true {
			return fmt.Errorf("unexpected virtual entry %v in ledger. Body: %s", entry["id"], string(tc.responseBody))
		}
	}
	return nil
}

func iSettleTheInvoice(ctx context.Context, cardName, dueDate, accountName string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	cardID, ok := tc.cardIDs[cardName]
	if !ok {
		return fmt.Errorf("unknown card %q in scenario", cardName)
	}
	accountID, ok := tc.accountIDs[accountName]
	if !ok {
		return fmt.Errorf("unknown account %q in scenario", accountName)
	}

	_, err := tc.postJSON("/api/v1/credit-cards/"+cardID+"/invoices/settle", map[string]any{
		"due_date":   dueDate,
		"account_id": accountID,
	}, http.StatusCreated)
	return err
}
