package service

import (
	"context"
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/store"
)

type passwordPolicy struct {
	rules  store.PasswordRuleRepository
	static config.PasswordPolicy

	logger *logger.Logger
}

// NewPasswordPolicy returns a PasswordPolicy applying the static complexity
// policy (when enabled) and then the stored regex rules in ordinal order.
func NewPasswordPolicy(rules store.PasswordRuleRepository, static config.PasswordPolicy, logger *logger.Logger) PasswordPolicy {
	return &passwordPolicy{
		rules:  rules,
		static: static,
		logger: logger,
	}
}

func (p *passwordPolicy) Check(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	if p.static.Enabled {
		if err := p.checkStatic(password); err != nil {
			return err
		}
	}

	rules, err := p.rules.ListRules(ctx)
	if err != nil {
		log.Err(err).Str("func", "*passwordPolicy.Check").Msg("error loading password strength rules")
		return &FrameworkError{Message: "cannot load password strength rules", Err: err}
	}

	for _, rule := range rules {
		matched, err := regexp.MatchString(rule.RegularExpression, password)
		if err != nil {
			log.Err(err).Str("func", "*passwordPolicy.Check").
				Str("rule_id", rule.ID).
				Str("pattern", rule.RegularExpression).
				Msg("invalid password strength rule")
			return &FrameworkError{Message: fmt.Sprintf("invalid password strength rule %q", rule.ID), Err: err}
		}
		if !matched {
			return &UserError{Message: rule.RuleDescription}
		}
	}

	return nil
}

func (p *passwordPolicy) checkStatic(password string) error {
	if utf8.RuneCountInString(password) < p.static.RequiredLength {
		return NewUserError("Passwords must be at least %d characters.", p.static.RequiredLength)
	}

	var digit, lower, upper, other bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case !unicode.IsLetter(r):
			other = true
		}
	}

	switch {
	case p.static.RequireNonAlphanumeric && !other:
		return NewUserError("Passwords must have at least one non letter or digit character.")
	case p.static.RequireDigit && !digit:
		return NewUserError("Passwords must have at least one digit ('0'-'9').")
	case p.static.RequireLowercase && !lower:
		return NewUserError("Passwords must have at least one lowercase ('a'-'z').")
	case p.static.RequireUppercase && !upper:
		return NewUserError("Passwords must have at least one uppercase ('A'-'Z').")
	}

	return nil
}
