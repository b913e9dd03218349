// Package main provides a tool to seed the anatomy catalog.
//
// It replaces the muscle-storage partition with the built-in starter
// catalog so a fresh install has content to browse.
//
// Usage:
//
//	go run ./cmd/seed --data-path ~/.musclemap
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/musclemap/musclemap-client/internal/content"
	"github.com/musclemap/musclemap-client/internal/domain"
	"github.com/musclemap/musclemap-client/internal/persist"
)

var dataPath = flag.String("data-path", "", "directory for the partition database (default ~/.musclemap)")

func main() {
	flag.Parse()

	path := *dataPath
	if path == "" {
		path = os.Getenv("DATA_PATH")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		path = filepath.Join(home, ".musclemap")
	}

	dbPath := filepath.Join(path, "db")
	fmt.Printf("Opening database at: %s\n", dbPath)

	p, err := persist.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer p.Close()

	ctx := context.Background()

	store, err := content.New(ctx, p, nil)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}

	if err := store.ReplaceAll(ctx, starterCatalog()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	fmt.Printf("Seeded %d muscles across %d groups\n", store.Count(), len(store.Groups()))
	for _, group := range store.Groups() {
		fmt.Printf("  %s: %d\n", group, len(store.ByGroup(group)))
	}
}

func starterCatalog() []domain.Muscle {
	return []domain.Muscle{
		{
			Slug:      "biceps-brachii",
			Name:      "Biceps Brachii",
			Group:     "arms",
			Origin:    "Supraglenoid tubercle and coracoid process of the scapula",
			Insertion: "Radial tuberosity",
			Actions:   []string{"elbow flexion", "forearm supination"},
			ModelURL:  "https://models.musclemap.app/biceps-brachii.glb",
			Summary:   "Two-headed flexor on the front of the upper arm.",
		},
		{
			Slug:      "triceps-brachii",
			Name:      "Triceps Brachii",
			Group:     "arms",
			Origin:    "Infraglenoid tubercle of the scapula and posterior humerus",
			Insertion: "Olecranon process of the ulna",
			Actions:   []string{"elbow extension"},
			ModelURL:  "https://models.musclemap.app/triceps-brachii.glb",
			Summary:   "Three-headed extensor on the back of the upper arm.",
		},
		{
			Slug:      "deltoid",
			Name:      "Deltoid",
			Group:     "shoulders",
			Origin:    "Clavicle, acromion, and spine of the scapula",
			Insertion: "Deltoid tuberosity of the humerus",
			Actions:   []string{"shoulder abduction", "flexion", "extension"},
			ModelURL:  "https://models.musclemap.app/deltoid.glb",
			Summary:   "Rounded cap of the shoulder with three functional parts.",
		},
		{
			Slug:      "pectoralis-major",
			Name:      "Pectoralis Major",
			Group:     "chest",
			Origin:    "Clavicle, sternum, and costal cartilages",
			Insertion: "Lateral lip of the bicipital groove of the humerus",
			Actions:   []string{"shoulder adduction", "medial rotation", "horizontal flexion"},
			ModelURL:  "https://models.musclemap.app/pectoralis-major.glb",
			Summary:   "Large fan-shaped muscle of the anterior chest wall.",
		},
		{
			Slug:      "latissimus-dorsi",
			Name:      "Latissimus Dorsi",
			Group:     "back",
			Origin:    "Spinous processes T7-L5, thoracolumbar fascia, iliac crest",
			Insertion: "Floor of the bicipital groove of the humerus",
			Actions:   []string{"shoulder extension", "adduction", "medial rotation"},
			ModelURL:  "https://models.musclemap.app/latissimus-dorsi.glb",
			Summary:   "Broadest muscle of the back.",
		},
		{
			Slug:      "trapezius",
			Name:      "Trapezius",
			Group:     "back",
			Origin:    "External occipital protuberance, nuchal ligament, spinous processes C7-T12",
			Insertion: "Clavicle, acromion, and spine of the scapula",
			Actions:   []string{"scapular elevation", "retraction", "depression"},
			ModelURL:  "https://models.musclemap.app/trapezius.glb",
			Summary:   "Diamond-shaped muscle spanning the neck and upper back.",
		},
		{
			Slug:      "rectus-abdominis",
			Name:      "Rectus Abdominis",
			Group:     "core",
			Origin:    "Pubic crest and pubic symphysis",
			Insertion: "Xiphoid process and costal cartilages 5-7",
			Actions:   []string{"trunk flexion"},
			ModelURL:  "https://models.musclemap.app/rectus-abdominis.glb",
			Summary:   "Paired strap muscle of the anterior abdominal wall.",
		},
		{
			Slug:      "gluteus-maximus",
			Name:      "Gluteus Maximus",
			Group:     "legs",
			Origin:    "Ilium, sacrum, and coccyx",
			Insertion: "Iliotibial tract and gluteal tuberosity of the femur",
			Actions:   []string{"hip extension", "lateral rotation"},
			ModelURL:  "https://models.musclemap.app/gluteus-maximus.glb",
			Summary:   "Largest muscle of the body, main hip extensor.",
		},
		{
			Slug:      "rectus-femoris",
			Name:      "Rectus Femoris",
			Group:     "legs",
			Origin:    "Anterior inferior iliac spine",
			Insertion: "Patella via the quadriceps tendon",
			Actions:   []string{"knee extension", "hip flexion"},
			ModelURL:  "https://models.musclemap.app/rectus-femoris.glb",
			Summary:   "Central quadriceps muscle crossing both hip and knee.",
		},
		{
			Slug:      "biceps-femoris",
			Name:      "Biceps Femoris",
			Group:     "legs",
			Origin:    "Ischial tuberosity and linea aspera of the femur",
			Insertion: "Head of the fibula",
			Actions:   []string{"knee flexion", "hip extension"},
			ModelURL:  "https://models.musclemap.app/biceps-femoris.glb",
			Summary:   "Lateral hamstring with a long and a short head.",
		},
		{
			Slug:      "gastrocnemius",
			Name:      "Gastrocnemius",
			Group:     "legs",
			Origin:    "Medial and lateral condyles of the femur",
			Insertion: "Calcaneus via the Achilles tendon",
			Actions:   []string{"plantar flexion", "knee flexion"},
			ModelURL:  "https://models.musclemap.app/gastrocnemius.glb",
			Summary:   "Two-headed calf muscle forming the bulk of the lower leg.",
		},
		{
			Slug:      "erector-spinae",
			Name:      "Erector Spinae",
			Group:     "back",
			Origin:    "Sacrum, iliac crest, and lumbar spinous processes",
			Insertion: "Ribs, transverse and spinous processes, mastoid process",
			Actions:   []string{"trunk extension", "lateral flexion"},
			ModelURL:  "https://models.musclemap.app/erector-spinae.glb",
			Summary:   "Deep column of muscles running the length of the spine.",
		},
	}
}
