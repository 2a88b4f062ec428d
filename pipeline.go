package gen1save

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/segmentio/ksuid"
)

const (
	saveExt = ".sav"
	workers = 10
)

// Collection indexes saves into a SaveDB
type Collection struct {
	db     *SaveDB
	logger *log.Logger
}

// NewCollection returns a Collection backed by the catalog in file
func NewCollection(file string, logger *log.Logger) (*Collection, error) {
	db, err := NewSaveDB(file)
	if err != nil {
		return nil, err
	}

	return &Collection{
		db:     db,
		logger: logger,
	}, nil
}

// Close closes the catalog
func (c *Collection) Close() error {
	return c.db.Close()
}

// DB returns the catalog
func (c *Collection) DB() *SaveDB {
	return c.db
}

// Index reads the save in file and builds its catalog record
func Index(file string, logger *log.Logger) (*SaveRecord, error) {
	sha, err := hashFile(file)
	if err != nil {
		return nil, err
	}

	s, err := Open(file, logger)
	if err != nil {
		return nil, err
	}

	t, err := s.Trainer()
	if err != nil {
		return nil, err
	}

	hof, err := s.HallOfFame()
	if err != nil {
		return nil, err
	}

	return &SaveRecord{
		SHA1:       sha,
		Path:       file,
		Trainer:    t,
		Valid:      s.Checksums().Valid(),
		HallOfFame: hof,
	}, nil
}

func (c *Collection) importFile(file, batch string) (*SaveRecord, error) {
	r, err := Index(file, c.logger)
	if err != nil {
		return nil, err
	}
	r.Batch = batch
	if _, err := c.db.AddSave(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Import indexes a single save under a new batch ID
func (c *Collection) Import(file string) (*SaveRecord, error) {
	return c.importFile(file, ksuid.New().String())
}

func (c *Collection) findFiles(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !strings.EqualFold(filepath.Ext(file), saveExt) {
				return nil
			}

			// Leave our own copies alone
			if name := info.Name(); strings.HasPrefix(name, backupPrefix) || strings.HasPrefix(name, editedPrefix) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (c *Collection) saveWorker(ctx context.Context, in <-chan string, batch string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			r, err := c.importFile(file, batch)
			if err != nil {
				var serr *SizeError
				if errors.As(err, &serr) {
					c.logger.Printf("Skipping \"%s\": %s\n", file, err)
					continue
				}
				errc <- err
				return
			}
			if !r.Valid {
				c.logger.Printf("\"%s\" has invalid checksums\n", file)
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			cancel()
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan indexes every save under path. Every save found is recorded under
// the same new batch ID, which is returned.
func (c *Collection) Scan(path string) (string, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	batch := ksuid.New().String()
	c.logger.Printf("Scanning \"%s\" as batch %s\n", dir, batch)

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findFiles(ctx, dir)
	if err != nil {
		return "", err
	}
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := c.saveWorker(ctx, files, batch)
		if err != nil {
			return "", err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(cancelFunc, errcList...); err != nil {
		return "", err
	}

	return batch, nil
}
