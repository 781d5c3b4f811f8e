package storage

import (
	"database/sql"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// PostgresStore persists run history in a simulation_runs table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(url string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *PostgresStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS simulation_runs (
			id UUID PRIMARY KEY,
			algorithm TEXT NOT NULL,
			process_count INT NOT NULL,
			total_time INT NOT NULL,
			average_waiting_time DOUBLE PRECISION NOT NULL,
			average_turnaround_time DOUBLE PRECISION NOT NULL,
			throughput DOUBLE PRECISION NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`)
	return err
}

func (s *PostgresStore) Save(run *SimulationRun) error {
	_, err := s.db.Exec(`
		INSERT INTO simulation_runs
			(id, algorithm, process_count, total_time, average_waiting_time,
			 average_turnaround_time, throughput, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		run.ID, run.Algorithm, run.ProcessCount, run.TotalTime,
		run.AverageWaitingTime, run.AverageTurnaroundTime, run.Throughput,
		[]byte(run.Result), run.CreatedAt)
	return err
}

func (s *PostgresStore) Get(id uuid.UUID) (*SimulationRun, error) {
	row := s.db.QueryRow(`
		SELECT id, algorithm, process_count, total_time, average_waiting_time,
		       average_turnaround_time, throughput, result, created_at
		FROM simulation_runs WHERE id = $1`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	return run, err
}

func (s *PostgresStore) List() ([]*SimulationRun, error) {
	rows, err := s.db.Query(`
		SELECT id, algorithm, process_count, total_time, average_waiting_time,
		       average_turnaround_time, throughput, result, created_at
		FROM simulation_runs ORDER BY created_at DESC LIMIT 100`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*SimulationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (*SimulationRun, error) {
	var run SimulationRun
	var result []byte
	err := row.Scan(&run.ID, &run.Algorithm, &run.ProcessCount, &run.TotalTime,
		&run.AverageWaitingTime, &run.AverageTurnaroundTime, &run.Throughput,
		&result, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	run.Result = result
	return &run, nil
}
