package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/models"
)

type passwordRuleRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPasswordRuleRepository(db *DB, logger *logger.Logger) PasswordRuleRepository {
	logger.Debug().Msg("creating password rule repository")
	return &passwordRuleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *passwordRuleRepository) ListRules(ctx context.Context) ([]models.PasswordStrengthRule, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPasswordRulesQuery()
	if err != nil {
		log.Err(err).Str("func", "*passwordRuleRepository.ListRules").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*passwordRuleRepository.ListRules").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	rules := make([]models.PasswordStrengthRule, 0, 8)
	for rows.Next() {
		var rule models.PasswordStrengthRule
		if err := rows.Scan(&rule.ID, &rule.Ordinal, &rule.RegularExpression, &rule.RuleDescription); err != nil {
			log.Err(err).Str("func", "*passwordRuleRepository.ListRules").Msg("failed to scan rule row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*passwordRuleRepository.ListRules").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return rules, nil
}
