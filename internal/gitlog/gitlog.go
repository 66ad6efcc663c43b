// Package gitlog reads commit history from a local git repository.
// It shells out to the git binary; no history ever leaves the machine.
package gitlog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotARepository is returned when the directory is not a git repository.
	ErrNotARepository = errors.New("not a git repository")

	// ErrGitNotFound is returned when the git binary is not on PATH.
	ErrGitNotFound = errors.New("git binary not found")
)

// Reader reads commit history from a repository directory.
type Reader struct {
	dir string
}

// NewReader creates a Reader for the given directory.
// If dir is empty, the current working directory is used.
func NewReader(dir string) (*Reader, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	return &Reader{dir: dir}, nil
}

// Dir returns the repository directory this reader operates on.
func (r *Reader) Dir() string {
	return r.dir
}

// IsRepo checks if the directory is within a git repository.
func (r *Reader) IsRepo(ctx context.Context) bool {
	// Check if .git exists (directory, or file for worktrees)
	gitDir := filepath.Join(r.dir, ".git")
	if info, err := os.Stat(gitDir); err == nil && (info.IsDir() || info.Mode().IsRegular()) {
		return true
	}

	// Check if we're inside a git repo by running git rev-parse
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = r.dir
	return cmd.Run() == nil
}

// CommitTimes returns the timestamps of all commits reachable from HEAD,
// oldest and newest unordered as git emits them. A repository with no
// commits yields an empty slice and no error.
func (r *Reader) CommitTimes(ctx context.Context) ([]time.Time, error) {
	cmd := exec.CommandContext(ctx, "git", "log", "--pretty=format:%ct")
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrGitNotFound
		}
		msg := stderr.String()
		if strings.Contains(msg, "not a git repository") {
			return nil, ErrNotARepository
		}
		// A repo with zero commits: git log fails with "does not have any commits"
		if strings.Contains(msg, "does not have any commits") {
			return nil, nil
		}
		return nil, fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(msg))
	}

	return ParseCommitTimes(stdout.String())
}

// ParseCommitTimes parses `git log --pretty=format:%ct` output into local times.
func ParseCommitTimes(output string) ([]time.Time, error) {
	var times []time.Time
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ts, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid commit timestamp %q: %w", line, err)
		}
		times = append(times, time.Unix(ts, 0))
	}
	return times, nil
}

// GitAvailable reports whether the git binary is on PATH.
func GitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}
