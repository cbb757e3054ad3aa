package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-forms-auth/models"
)

const (
	findPrincipalByName = `SELECT id, name FROM principals WHERE name = $1;`
	findPrincipalByID   = `SELECT id, name FROM principals WHERE id = $1;`

	// selectCredential reads the principal joined with its optional side row.
	// A missing side row reads as no password, no failures, no lockout.
	selectCredential = `SELECT p.id, p.name,
			COALESCE(c.password_hash, ''),
			COALESCE(c.failed_attempt_count, 0),
			c.lockout_until
		FROM principals p
		LEFT JOIN credentials c ON c.principal_id = p.id`

	findCredentialByName = selectCredential + ` WHERE p.name = $1;`
	findCredentialByID   = selectCredential + ` WHERE p.id = $1;`
	lockCredentialByName = selectCredential + ` WHERE p.name = $1 FOR UPDATE OF p;`

	saveCredential = `INSERT INTO credentials (principal_id, password_hash, failed_attempt_count, lockout_until)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (principal_id) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			failed_attempt_count = EXCLUDED.failed_attempt_count,
			lockout_until = EXCLUDED.lockout_until;`

	setPasswordHash = `INSERT INTO credentials (principal_id, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (principal_id) DO UPDATE SET password_hash = EXCLUDED.password_hash;`

	// recordFailedAttempt: $1 principal id, $2 threshold, $3 lockout end.
	recordFailedAttempt = `WITH updated AS (
			INSERT INTO credentials AS c (principal_id, failed_attempt_count, lockout_until)
			VALUES ($1,
				CASE WHEN 1 >= $2::int THEN 0 ELSE 1 END,
				CASE WHEN 1 >= $2::int THEN $3::timestamptz ELSE NULL END)
			ON CONFLICT (principal_id) DO UPDATE SET
				failed_attempt_count = CASE WHEN c.failed_attempt_count + 1 >= $2::int
					THEN 0 ELSE c.failed_attempt_count + 1 END,
				lockout_until = CASE WHEN c.failed_attempt_count + 1 >= $2::int
					THEN $3::timestamptz ELSE c.lockout_until END
			RETURNING principal_id, password_hash, failed_attempt_count, lockout_until
		)
		SELECT p.id, p.name, updated.password_hash, updated.failed_attempt_count, updated.lockout_until
		FROM updated
		JOIN principals p ON p.id = updated.principal_id;`

	resetFailedAttempts = `UPDATE credentials SET failed_attempt_count = 0 WHERE principal_id = $1;`

	setLockoutEnd = `INSERT INTO credentials (principal_id, lockout_until)
		VALUES ($1, $2)
		ON CONFLICT (principal_id) DO UPDATE SET lockout_until = EXCLUDED.lockout_until;`
)

// psql is the squirrel builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListPasswordRulesQuery() (string, []any, error) {
	return psql.
		Select("id", "ordinal", "regular_expression", "rule_description").
		From("password_strength_rules").
		OrderBy("ordinal", "id").
		ToSql()
}

// buildLoadPermissionsQuery unions the direct grants of principalID with
// the grants of its roles. Both halves bind the same principal id.
func buildLoadPermissionsQuery(principalID string) (string, []any, error) {
	direct, directArgs, err := sq.
		Select("c.id", "c.resource", `c."right"`, "pp.is_authorized").
		From("principal_permissions pp").
		Join("claims c ON c.id = pp.claim_id").
		Where(sq.Eq{"pp.principal_id": principalID}).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	viaRoles, roleArgs, err := sq.
		Select("c.id", "c.resource", `c."right"`, "rp.is_authorized").
		From("role_permissions rp").
		Join("claims c ON c.id = rp.claim_id").
		Join("principal_roles pr ON pr.role_id = rp.role_id").
		Where(sq.Eq{"pr.principal_id": principalID}).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	query, err := sq.Dollar.ReplacePlaceholders(direct + " UNION ALL " + viaRoles)
	if err != nil {
		return "", nil, err
	}

	return query, append(directArgs, roleArgs...), nil
}

func buildInsertPrincipalQuery(id, name string) (string, []any, error) {
	return psql.
		Insert(models.Principal{}.TableName()).
		Columns("id", "name").
		Values(id, name).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
}

func buildInsertRoleQuery(id, name string) (string, []any, error) {
	return psql.
		Insert(models.Role{}.TableName()).
		Columns("id", "name").
		Values(id, name).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
}

func buildInsertPrincipalRoleQuery(principalID, roleID string) (string, []any, error) {
	return psql.
		Insert("principal_roles").
		Columns("principal_id", "role_id").
		Values(principalID, roleID).
		Suffix("ON CONFLICT (principal_id, role_id) DO NOTHING").
		ToSql()
}

func buildInsertClaimQuery(id string, claim models.Claim) (string, []any, error) {
	return psql.
		Insert("claims").
		Columns("id", "resource", `"right"`).
		Values(id, claim.Resource, claim.Right).
		Suffix(`ON CONFLICT (resource, "right") DO NOTHING`).
		ToSql()
}

func buildSelectByNameQuery(table, name string) (string, []any, error) {
	return psql.
		Select("id", "name").
		From(table).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildSelectClaimQuery(claim models.Claim) (string, []any, error) {
	return psql.
		Select("id", "resource", `"right"`).
		From("claims").
		Where(sq.Eq{"resource": claim.Resource, `"right"`: claim.Right}).
		ToSql()
}

// buildGrantRolePermissionQuery upserts a role grant. The xmax trick in
// RETURNING reports whether the row was freshly inserted.
func buildGrantRolePermissionQuery(roleID, claimID string, isAuthorized bool) (string, []any, error) {
	if roleID == "" || claimID == "" {
		return "", nil, fmt.Errorf("%w: role and claim ids are required", ErrBuildingSQLQuery)
	}

	return psql.
		Insert("role_permissions").
		Columns("role_id", "claim_id", "is_authorized").
		Values(roleID, claimID, isAuthorized).
		Suffix("ON CONFLICT (role_id, claim_id) DO UPDATE SET is_authorized = EXCLUDED.is_authorized RETURNING (xmax = 0)").
		ToSql()
}
