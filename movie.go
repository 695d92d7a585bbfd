package sortbench

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Movie is the benchmark's concrete record type: one row of the dataset
// file. Ordering is by rating ascending, with the title as a deterministic
// tie-break so equal-rated movies always rank the same way.
type Movie struct {
	Title  string
	Year   int
	Rating float64
}

func (m Movie) Compare(other Movie) int {
	switch {
	case m.Rating < other.Rating:
		return -1
	case m.Rating > other.Rating:
		return 1
	}
	return strings.Compare(m.Title, other.Title)
}

func (m Movie) String() string {
	return fmt.Sprintf("%s,%d,%.1f", m.Title, m.Year, m.Rating)
}

// ReadMovies loads up to n records from a comma-delimited dataset file of
// title,year,rating rows. A header line and malformed rows are skipped
// rather than treated as errors; datasets in the wild carry both.
func ReadMovies(path string, n int) ([]Movie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to open dataset %s: %w", path, err)
	}
	defer file.Close()

	var movies []Movie
	scanner := bufio.NewScanner(file)
	for len(movies) < n && scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		if len(fields) < 3 {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			continue
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			continue
		}
		movies = append(movies, Movie{
			Title:  strings.TrimSpace(fields[0]),
			Year:   year,
			Rating: rating,
		})
	}

	return movies, scanner.Err()
}
