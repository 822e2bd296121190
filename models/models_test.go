package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	want := map[Status]string{
		StatusSuccess:      "success",
		StatusError:        "error",
		StatusConflict:     "conflict",
		StatusNotFound:     "not found",
		StatusCancelled:    "cancelled",
		StatusInvalidInput: "invalid input",
	}

	statuses := Statuses()
	assert.Len(t, statuses, len(want))
	for _, s := range statuses {
		assert.Equal(t, want[s], s.String())
	}
	assert.Equal(t, "unknown", Status(99).String())
}

func TestStatus_OK(t *testing.T) {
	for _, s := range Statuses() {
		assert.Equal(t, s == StatusSuccess, s.OK(), s.String())
	}
}

func TestDisplayLogin(t *testing.T) {
	empty := ""
	login := "alice"

	assert.Equal(t, NotAvailable, CredentialView{}.DisplayLogin())
	assert.Equal(t, NotAvailable, CredentialView{LoginIdentifier: &empty}.DisplayLogin())
	assert.Equal(t, "alice", CredentialView{LoginIdentifier: &login}.DisplayLogin())
	assert.Equal(t, "alice", CredentialRecord{LoginIdentifier: &login}.DisplayLogin())
}

func TestAccount_View(t *testing.T) {
	account := Account{ID: 7, Username: "alice", DerivedKey: []byte{1}, Salt: []byte{2}}

	assert.Equal(t, AccountView{ID: 7, Username: "alice"}, account.View())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", " ", "")

	assert.Equal(t, "v1.0.0", info.Version())
	assert.Equal(t, NotAvailable, info.Date())
	assert.Equal(t, NotAvailable, info.Commit())
	assert.Equal(t, NotAvailable, AppBuildInfo{}.Version())
}
