package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

// psql builds SQLite statements with "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	accountColumns    = []string{"id", "username", "derived_key", "salt"}
	credentialColumns = []string{"id", "account_id", "service_name", "login_identifier", "secret_ciphertext"}
)

func buildInsertAccountQuery(account models.Account) (string, []any, error) {
	return psql.Insert(account.TableName()).
		Columns("username", "derived_key", "salt").
		Values(account.Username, account.DerivedKey, account.Salt).
		ToSql()
}

func buildSelectAccountByUsernameQuery(username string) (string, []any, error) {
	return psql.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildUpdateUsernameQuery(accountID int64, newUsername string) (string, []any, error) {
	return psql.Update(models.Account{}.TableName()).
		Set("username", newUsername).
		Where(sq.Eq{"id": accountID}).
		ToSql()
}

func buildDeleteAccountQuery(accountID int64) (string, []any, error) {
	return psql.Delete(models.Account{}.TableName()).
		Where(sq.Eq{"id": accountID}).
		ToSql()
}

func buildDeleteAccountCredentialsQuery(accountID int64) (string, []any, error) {
	return psql.Delete(models.CredentialRecord{}.TableName()).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

func buildInsertCredentialQuery(record models.CredentialRecord) (string, []any, error) {
	return psql.Insert(record.TableName()).
		Columns("account_id", "service_name", "login_identifier", "secret_ciphertext").
		Values(record.AccountID, record.ServiceName, record.LoginIdentifier, record.SecretCiphertext).
		ToSql()
}

// buildSelectCredentialsQuery lists the account's records in insertion order,
// optionally narrowed to an exact service name.
func buildSelectCredentialsQuery(accountID int64, serviceName *string) (string, []any, error) {
	where := sq.Eq{"account_id": accountID}
	if serviceName != nil {
		where["service_name"] = *serviceName
	}

	return psql.Select(credentialColumns...).
		From(models.CredentialRecord{}.TableName()).
		Where(where).
		OrderBy("id ASC").
		ToSql()
}

func buildDeleteCredentialQuery(accountID, credentialID int64) (string, []any, error) {
	return psql.Delete(models.CredentialRecord{}.TableName()).
		Where(sq.Eq{"id": credentialID, "account_id": accountID}).
		ToSql()
}
