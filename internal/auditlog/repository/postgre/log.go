package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"

	"recipient-srv/internal/auditlog/repository"
)

var executionLogColumns = []string{
	"id",
	"transaction_id",
	"_environment_id",
	"_organization_id",
	"user_id",
	"topic_key",
	"code",
	"status",
	"text",
	"raw",
	"created_at",
}

// insertExecutionLogQuery is built once in the quoted, indexed-placeholder
// form Postgres expects.
var insertExecutionLogQuery = fmt.Sprintf(
	"INSERT INTO \"execution_logs\" (%s) VALUES (%s)",
	strings.Join(strmangle.IdentQuoteSlice('"', '"', executionLogColumns), ","),
	strmangle.Placeholders(true, len(executionLogColumns), 1, 1),
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) error {
	args, err := r.buildCreateArgs(opts)
	if err != nil {
		r.l.Errorf(ctx, "internal.auditlog.repository.postgres.Create.buildCreateArgs: %v", err)
		return err
	}

	if _, err := r.db.ExecContext(ctx, insertExecutionLogQuery, args...); err != nil {
		r.l.Errorf(ctx, "internal.auditlog.repository.postgres.Create.ExecContext: %v", err)
		return errors.Wrap(err, "postgres: unable to insert into execution_logs")
	}
	return nil
}

func (r *implRepository) buildCreateArgs(opts repository.CreateOptions) ([]interface{}, error) {
	e := opts.Entry

	raw := []byte("{}")
	if len(e.Raw) > 0 {
		b, err := json.Marshal(e.Raw)
		if err != nil {
			return nil, errors.Wrap(err, "marshal raw")
		}
		raw = b
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.clock()
	}

	return []interface{}{
		r.newID(),
		e.TransactionID,
		e.EnvironmentID,
		e.OrganizationID,
		e.UserID,
		e.TopicKey,
		string(e.Code),
		string(e.Status),
		e.Text,
		raw,
		createdAt,
	}, nil
}
