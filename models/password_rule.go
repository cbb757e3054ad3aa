package models

// PasswordStrengthRule is one admin-maintained password rule. A candidate
// password passes the rule when RegularExpression matches it anywhere.
type PasswordStrengthRule struct {
	ID                string `json:"id"`
	Ordinal           int    `json:"ordinal"`
	RegularExpression string `json:"regular_expression"`
	RuleDescription   string `json:"rule_description"`
}

// TableName returns the name of the database table
// associated with the PasswordStrengthRule model.
func (r PasswordStrengthRule) TableName() string {
	return "password_strength_rules"
}
