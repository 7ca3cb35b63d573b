package domain

// EntryKind distinguishes which ledger list a transaction belongs to.
type EntryKind string

const (
	EntryIncome  EntryKind = "income"
	EntryOutcome EntryKind = "outcome"
)

// DateLayout is the calendar stamp applied to transactions at creation time.
// Day and month only; the reference system never stored the year.
const DateLayout = "02/01"

// Transaction is a single immutable ledger entry. Whether it is an income or
// an outcome is determined by which list it lives in, not by a sign or tag.
type Transaction struct {
	Amount      int64  `json:"amount" bson:"amount"`
	Description string `json:"description" bson:"description"`
	Date        string `json:"date" bson:"date"`
}

// User is the aggregate owning a pair of append-only transaction lists.
// Name and email are unique across all users.
type User struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	Name         string        `json:"name" bson:"name"`
	Email        string        `json:"email,omitempty" bson:"email"`
	PasswordHash string        `json:"-" bson:"password"`
	Incomes      []Transaction `json:"incomes" bson:"incomes,omitempty"`
	Outcomes     []Transaction `json:"outcomes" bson:"outcomes,omitempty"`
}
