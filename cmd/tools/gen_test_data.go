package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"greeting-hub/domain/mimetypes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// Generates media fixtures for manual runs against a hub: a card the hub accepts,
// a PDF it must reject, and a ready-to-post compose body per file.
func main() {
	outputDir := "./test_data"
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		panic(fmt.Sprintf("cannot create %s: %v", outputDir, err))
	}
	recipient := "bob"
	if len(os.Args) > 1 {
		recipient = os.Args[1]
	}

	fmt.Println("Greeting hub: generating media fixtures...")

	pngPath := filepath.Join(outputDir, "birthday_card.png")
	genImage(pngPath)
	pdfPath := filepath.Join(outputDir, "invitation.pdf")
	genPDF(pdfPath)

	for _, path := range []string{pngPath, pdfPath} {
		if err := genComposeBody(path, recipient); err != nil {
			fmt.Printf("Compose body for %s failed: %v\n", path, err)
		}
	}

	fmt.Println("\nDone. POST the *.json files to /greetings with a bearer token")
}

// genImage draws a 400x300 card with a gradient
func genImage(path string) {
	width, height := 400, 300
	img := image.NewRGBA(image.Rectangle{Min: image.Point{}, Max: image.Point{X: width, Y: height}})
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 230, G: uint8(y % 255), B: uint8(x % 255), A: 0xff})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Image error: %v\n", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Printf("Image error: %v\n", err)
	} else {
		fmt.Printf("Image generated: %s\n", path)
	}
}

// genPDF writes a one page document, a media type greetings refuse
func genPDF(path string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(40, 20, "You are invited")
	pdf.Ln(20)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, "Attaching this file to a greeting must fail with unsupported media.", "", "", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		fmt.Printf("PDF error: %v\n", err)
	} else {
		fmt.Printf("PDF generated: %s\n", path)
	}
}

func genComposeBody(path, recipient string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	detected := mimetypes.Sniff(data)
	body := map[string]string{
		"recipient_type": "user",
		"recipient_id":   recipient,
		"message":        "Greetings with " + filepath.Base(path),
		"media":          base64.StdEncoding.EncodeToString(data),
	}
	out, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return err
	}
	target := path + ".json"
	if err := os.WriteFile(target, out, 0644); err != nil {
		return err
	}
	fmt.Printf("Compose body: %s (%s, accepted=%t)\n", target, detected, mimetypes.IsGreetingMedia(detected))
	return nil
}
