// SPDX-License-Identifier: MIT

package pairio

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubepers/field"
	"github.com/katalvlaran/cubepers/persistence"
)

// FileSink writes each pass's certificates to <Base>.red.<d> and
// <Base>.bnd.<d>.
type FileSink struct {
	Base   string
	Dim    int // grid dimension
	Logger *zap.Logger
}

var _ persistence.CertificateSink = (*FileSink)(nil)

// ReductionPath returns the reduction certificate path for pass d.
func (s *FileSink) ReductionPath(d int) string { return fmt.Sprintf("%s.red.%d", s.Base, d) }

// BoundaryPath returns the boundary certificate path for pass d.
func (s *FileSink) BoundaryPath(d int) string { return fmt.Sprintf("%s.bnd.%d", s.Base, d) }

// WriteCertificates implements persistence.CertificateSink.
func (s *FileSink) WriteCertificates(d int, certs persistence.Certificates, vertices []field.Coord) error {
	if err := writeFile(s.ReductionPath(d), certs.Reduction, vertices, s.Dim); err != nil {
		return err
	}
	if err := writeFile(s.BoundaryPath(d), certs.Boundary, vertices, s.Dim); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Debug("certificates written", zap.Int("dim", d),
			zap.Int("records", len(certs.Reduction)), zap.String("base", s.Base))
	}
	return nil
}

func writeFile(path string, lists [][]int, vertices []field.Coord, dim int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pairio: creating %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return WriteCertificates(f, lists, vertices, dim)
}
