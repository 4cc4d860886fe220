package bootstrap

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/patrickprogramme/lyricruby/internal/fsutil"
)

// Statuts retournés par ExportDefaults pour chaque fichier embarqué.
const (
	StatusWritten     = "written"
	StatusUnchanged   = "unchanged"
	StatusSkipped     = "skipped (different)"
	StatusOverwritten = "overwritten"
)

// ExportDefaults copie récursivement tous les fichiers sous srcPrefix (dans fsys)
// vers destDir en préservant la hiérarchie relative.
// - fsys : embed.FS (ou tout fs.FS)
// - srcPrefix : chemin racine dans fsys à copier (ex: "templates"), "." pour tout
// - destDir : dossier sur disque cible
// - force : si true, écrase les fichiers différents (avec backup)
//
// Retourne une map[embeddedPath]status et une erreur globale si Walk échoue.
func ExportDefaults(fsys fs.FS, srcPrefix, destDir string, force bool) (map[string]string, error) {
	status := make(map[string]string)

	err := fs.WalkDir(fsys, srcPrefix, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		// chemin relatif par rapport à srcPrefix
		rel, err := filepath.Rel(srcPrefix, p)
		if err != nil {
			return err
		}
		destPath := filepath.Join(destDir, rel)

		if d.IsDir() {
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return fmt.Errorf("mkdir %s: %w", destPath, err)
			}
			return nil
		}

		st, err := exportFile(fsys, p, destPath, force)
		if err != nil {
			status[p] = "error: " + err.Error()
			return err
		}
		status[p] = st
		return nil
	})

	return status, err
}

// exportFile écrit un fichier embarqué sur disque et retourne son statut.
func exportFile(fsys fs.FS, src, destPath string, force bool) (string, error) {
	data, err := fs.ReadFile(fsys, path.Clean(filepath.ToSlash(src)))
	if err != nil {
		return "", fmt.Errorf("lecture de la ressource embarquée %s : %w", src, err)
	}

	existing, err := os.ReadFile(destPath)
	switch {
	case err == nil:
		if bytes.Equal(existing, data) {
			return StatusUnchanged, nil
		}
		if !force {
			return StatusSkipped, nil
		}
		// force -> backup puis écrasement
		backup := destPath + ".bak." + time.Now().Format("20060102T150405")
		if err := fsutil.WriteFileAtomic(backup, existing, 0o644); err != nil {
			return "", fmt.Errorf("sauvegarde de %s impossible : %w", destPath, err)
		}
		if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
			return "", err
		}
		return StatusOverwritten, nil
	case os.IsNotExist(err):
		if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
			return "", err
		}
		return StatusWritten, nil
	default:
		return "", fmt.Errorf("lecture de %s impossible : %w", destPath, err)
	}
}

// EnsureTemplatesPresent s'assure que les templates listés existent dans tplDir.
// Les fichiers manquants sont copiés depuis fsys (à plat, par basename) ;
// un fichier déjà présent n'est JAMAIS remplacé.
func EnsureTemplatesPresent(tplDir string, fsys fs.FS, srcFiles []string) error {
	// le parent doit exister : on ne crée pas d'arborescence au hasard
	parent := filepath.Dir(tplDir)
	if st, err := os.Stat(parent); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("le répertoire parent n'existe pas : %s", parent)
		}
		return fmt.Errorf("échec lors du test du répertoire parent %s : %w", parent, err)
	} else if !st.IsDir() {
		return fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	if err := os.MkdirAll(tplDir, 0o755); err != nil {
		return fmt.Errorf("échec de création du répertoire de templates %s : %w", tplDir, err)
	}
	empty, err := fsutil.IsDirEmpty(tplDir)
	if err != nil {
		return fmt.Errorf("échec lors de la vérification du répertoire %s : %w", tplDir, err)
	}

	for _, src := range srcFiles {
		dest := filepath.Join(tplDir, filepath.Base(src))
		if !empty {
			if _, err := os.Stat(dest); err == nil {
				continue
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("échec lors du test du fichier %s : %w", dest, err)
			}
		}
		if _, err := exportFile(fsys, src, dest, false); err != nil {
			return fmt.Errorf("échec d'écriture du template %s : %w", dest, err)
		}
	}
	return nil
}

// SortedPaths retourne les clés d'un rapport d'export, triées (affichage stable).
func SortedPaths(status map[string]string) []string {
	keys := make([]string, 0, len(status))
	for k := range status {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
