package las

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReadFiles parses several LAS files concurrently. Each file is parsed
// independently; the first failure cancels the files not yet started and
// is returned. On success docs[i] belongs to paths[i].
func ReadFiles(ctx context.Context, paths []string, opts ...Option) ([]*Document, error) {
	p := NewParser(opts...)
	docs := make([]*Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if p.concurrency > 0 {
		g.SetLimit(p.concurrency)
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := p.ParseFile(path)
			if err != nil {
				return err
			}
			p.logger.WithFields(logrus.Fields{
				"path":   path,
				"curves": len(doc.curves),
			}).Debug("loaded file")
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
