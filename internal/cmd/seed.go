package cmd

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nwrobel/gocommons/file"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedExtensions are the file types written by seed, so list --ext and dupes
// have something to find.
var seedExtensions = []string{".mp3", ".flac", ".m3u", ".txt"}

// NewSeedCmd creates and returns the seed subcommand.
// It generates test files with a randomized dated directory structure.
func NewSeedCmd(s *settings) *cobra.Command {
	var (
		outputPath string
		fileCount  int
		poolSize   int
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate test files with randomized directory structure",
		Long: `Generate sample files for trying out the other commands.

Creates files in a YYYY/MM/DD directory structure. Each file contains a
single UUID line drawn from a small pool, so identical files are common,
and its modification time matches the directory it sits in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := runSeed(outputPath, fileCount, poolSize, seed)
			if err != nil {
				return err
			}
			s.log.Info("seeded", zap.String("output", outputPath), zap.Int("files", st.files), zap.Int("dirs", st.dirs))
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d files in %d directories\n", st.files, st.dirs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 1000, "Number of files to generate")
	cmd.Flags().IntVar(&poolSize, "pool", 50, "Number of distinct file contents")
	cmd.Flags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "Random seed")

	cmd.MarkFlagRequired("output")

	return cmd
}

type seedStats struct {
	files int
	dirs  int
}

func runSeed(outputPath string, fileCount, poolSize int, seed uint64) (seedStats, error) {
	if poolSize < 1 {
		poolSize = 1
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return seedStats{}, fmt.Errorf("create output directory: %w", err)
	}

	// The UUID pool draws from the same source so a seed fixes file contents
	// as well as names and times.
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	src := rand.NewChaCha8(key)
	rng := rand.New(src)
	pool := make([]string, poolSize)
	for i := range pool {
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return seedStats{}, err
		}
		pool[i] = id.String()
	}

	dirs := make(map[string]bool)
	baseTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	created := 0
	for created < fileCount {
		fileTime := baseTime.AddDate(0, 0, rng.IntN(365)).Add(time.Duration(rng.IntN(86400)) * time.Second)
		dirPath := filepath.Join(outputPath,
			fmt.Sprintf("%04d", fileTime.Year()),
			fmt.Sprintf("%02d", fileTime.Month()),
			fmt.Sprintf("%02d", fileTime.Day()))
		if !dirs[dirPath] && !file.DirectoryExists(dirPath) {
			if err := os.MkdirAll(dirPath, 0o755); err != nil {
				return seedStats{}, err
			}
		}
		dirs[dirPath] = true

		ext := seedExtensions[rng.IntN(len(seedExtensions))]
		filePath := filepath.Join(dirPath, fmt.Sprintf("%08x%s", rng.Uint32(), ext))
		if file.PathExists(filePath) {
			continue
		}
		if err := file.WriteToFile(filePath, pool[rng.IntN(poolSize)]); err != nil {
			return seedStats{}, err
		}
		if err := os.Chtimes(filePath, fileTime, fileTime); err != nil {
			return seedStats{}, err
		}
		created++
	}
	return seedStats{files: created, dirs: len(dirs)}, nil
}
