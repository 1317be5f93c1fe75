package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tu-usuario/it-supplies-api/internal/domain/entity"
	"github.com/tu-usuario/it-supplies-api/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo implementación del puerto LogRepository sobre PostgreSQL.
// Solo insert y select: la tabla logs rechaza UPDATE y DELETE por trigger
// (ver migración), así la inmutabilidad no depende de este código.
type LogRepo struct {
	q Querier
}

// NewLogRepository construye el adaptador del historial de auditoría.
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// Create inserta una entrada nueva. Details se persiste como JSONB tal cual.
func (r *LogRepo) Create(ctx context.Context, entry *entity.LogEntry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("marshal log details: %w", err)
	}
	query := `
		INSERT INTO logs (id, ts, action, user_id, details, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(ctx, query,
		entry.ID, entry.Timestamp, entry.Action, entry.UserID, details, entry.IPAddress, entry.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

// List devuelve una página ordenada por timestamp descendente y el total que
// matchea el filtro. El username del actor se resuelve con un join de lectura;
// si el usuario fue eliminado queda vacío pero la entrada persiste.
func (r *LogRepo) List(ctx context.Context, filter entity.LogFilter, limit, offset int) ([]*entity.LogEntry, int, error) {
	var conditions []string
	var args []any

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, "l.user_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Action != "" {
		args = append(args, filter.Action)
		conditions = append(conditions, "l.action = $"+strconv.Itoa(len(args)))
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, "l.ts >= $"+strconv.Itoa(len(args)))
		args = append(args, *filter.EndDate)
		conditions = append(conditions, "l.ts <= $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM logs l`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count logs: %w", err)
	}

	args = append(args, limit)
	limitArg := strconv.Itoa(len(args))
	args = append(args, offset)
	offsetArg := strconv.Itoa(len(args))

	query := `
		SELECT l.id, l.ts, l.action, l.user_id, l.details, l.ip_address, l.user_agent, coalesce(u.username, '')
		FROM logs l
		LEFT JOIN users u ON u.id = l.user_id` +
		where + `
		ORDER BY l.ts DESC
		LIMIT $` + limitArg + ` OFFSET $` + offsetArg

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.LogEntry
	for rows.Next() {
		var e entity.LogEntry
		var details []byte
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Action, &e.UserID, &details,
			&e.IPAddress, &e.UserAgent, &e.Username); err != nil {
			return nil, 0, fmt.Errorf("scan log: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, 0, fmt.Errorf("unmarshal log details: %w", err)
			}
		}
		list = append(list, &e)
	}
	return list, total, rows.Err()
}
