package ai

import (
	"fmt"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

const plainAnswer = "Jawab tanpa menggunakan format markdown atau simbol bintang."

var AnimalPrompt = `Analisis gambar hewan ini dan berikan informasi dalam format bersih berikut:

🐾 MAKANAN: %s

IDENTIFIKASI:
• Nama: [nama Indonesia] (nama Latin)
• Jenis: [herbivora/karnivora/omnivora]
• Habitat: [dimana hidup]

ANALISIS MAKANAN:
✅ Cocok / ❌ Tidak Cocok / ⚠️ Hati-hati
Alasan: [penjelasan singkat]

FAKTA MENARIK:
• [1 fakta unik tentang hewan ini]
• [tips singkat jika dipelihara]

Tingkat Kepercayaan: [XX]%%

Jawab dengan singkat dan informatif tanpa menggunakan format markdown atau simbol bintang.`

var PlantPrompt = `Analisis gambar tumbuhan ini dan berikan informasi dalam format bersih berikut:

🌱 IDENTIFIKASI:
• Nama: [nama Indonesia] (nama Latin)
• Familia: [nama familia]
• Jenis: [pohon/semak/herba/tanaman merambat]

🍃 CIRI KHAS:
• Daun: [bentuk singkat]
• Bunga: [warna/bentuk jika ada]
• Habitat: [dimana tumbuh]

💡 KEGUNAAN:
• [kegunaan utama: hias/obat/pangan/industri]
• [manfaat khusus jika ada]

🌿 CARA RAWAT:
• Cahaya: [penuh/teduh/sebagian]
• Air: [sering/jarang/sedang]
• Tanah: [jenis tanah yang cocok]

Tingkat Kepercayaan: [XX]%

Jawab dengan singkat dan informatif tanpa menggunakan format markdown atau simbol bintang.`

var MedicinalPrompt = `Analisis gambar tumbuhan ini untuk deteksi obat herbal:

🌿 STATUS: [TUMBUHAN OBAT / BUKAN TUMBUHAN OBAT / TIDAK PASTI]

IDENTIFIKASI:
• Nama: [nama Indonesia] (nama Latin)
• Bagian obat: [daun/akar/batang/bunga/buah]

💊 KHASIAT UTAMA:
• Untuk mengobati: [1-2 penyakit utama]
• Cara pakai: [direbus/ditumbuk/dimakan/dioleskan]

⚠️ KEAMANAN:
• Status: [AMAN/HATI-HATI/BERBAHAYA]
• Catatan: [peringatan singkat jika ada]

📋 INFO SINGKAT:
• Nama lokal: [jika ada]
• Habitat: [dimana tumbuh]

Kepercayaan: [XX]%

PERINGATAN: Konsultasi dokter sebelum digunakan untuk pengobatan.

Jawab singkat dan jelas tanpa format markdown atau simbol bintang.`

const historySections = `🏛️ IDENTIFIKASI:
• %s: [nama lengkap tokoh/peristiwa]
• Kategori: [Pahlawan Nasional/Ilmuwan/Tokoh Dunia/Peristiwa Sejarah]
• Periode: [tahun lahir-wafat atau tahun kejadian]
• Negara/Asal: [tempat asal atau lokasi peristiwa]

📚 BIOGRAFI SINGKAT:
• Latar belakang: [kelahiran, keluarga, pendidikan]
• Pencapaian utama: [kontribusi terpenting]
• Peran sejarah: [mengapa penting dalam sejarah]

⚔️ PERJUANGAN/KONTRIBUSI:
• [3-4 poin penting tentang perjuangan atau kontribusi]

🎯 WARISAN:
• Dampak: [pengaruh terhadap masa kini]
• Penghargaan: [gelar, monument, atau pengakuan]
• Pelajaran: [nilai yang bisa dipetik]

📅 PERISTIWA PENTING:
• [kronologi peristiwa penting dalam hidupnya]

🏆 FAKTA MENARIK:
• [2-3 fakta unik atau inspiratif]`

var HistoricalImagePrompt = "Analisis gambar ini untuk identifikasi tokoh sejarah, pahlawan, ilmuwan, atau peristiwa bersejarah:\n\n" +
	fmt.Sprintf(historySections, "Nama") +
	"\n\nKepercayaan: [XX]%\n\nJawab dengan detail namun mudah dipahami, tanpa format markdown atau simbol bintang."

var HistorySearchPrompt = "Berikan informasi lengkap tentang \"%[1]s\" dalam konteks sejarah:\n\n" +
	fmt.Sprintf(historySections, "Nama lengkap") +
	"\n\nJika \"%[1]s\" adalah peristiwa sejarah, fokuskan pada latar belakang, kronologi, tokoh yang terlibat, dan dampaknya." +
	"\n\nJawab dengan detail namun mudah dipahami, tanpa format markdown atau simbol bintang."

var HistoryFallbackPrompt = `Berikan informasi sejarah lengkap tentang "%s" dengan format yang mudah dipahami. Sertakan biografi, perjuangan, dan warisan sejarahnya.`

var SentimentPrompt = `Analisis sentimen teks ini dengan format bersih:

😊 SENTIMEN: [POSITIF/NEGATIF/NETRAL]

ANALISIS:
• Skor: [1-10] ([penjelasan singkat])
• Emosi: [emosi dominan yang terdeteksi]
• Indikator: [kata/frasa kunci yang menunjukkan sentimen]

KESIMPULAN:
[1 kalimat ringkasan tentang sentimen teks]

Kepercayaan: [XX]%%

Teks: "%s"

` + plainAnswer

var LanguagePrompt = `Deteksi bahasa teks ini dengan format bersih:

🌐 BAHASA: [Nama Bahasa]

ANALISIS:
• Kode: [ISO code]
• Kepercayaan: [XX]%%
• Indikator: [kata/frasa yang menunjukkan bahasa ini]

CIRI KHAS:
[1-2 ciri unik bahasa yang terdeteksi]

Teks: "%s"

` + plainAnswer

var KeywordsPrompt = `Ekstrak kata kunci dari teks ini dengan format bersih:

🔑 KATA KUNCI UTAMA:
1. [kata 1] - [relevansi]
2. [kata 2] - [relevansi]
3. [kata 3] - [relevansi]
4. [kata 4] - [relevansi]
5. [kata 5] - [relevansi]

TEMA: [tema utama teks]
KATEGORI: [kategori/bidang teks]

Teks: "%s"

` + plainAnswer

var FactArgumentPrompt = `Analisis teks ini untuk menentukan apakah berupa fakta atau argumen:

📊 JENIS: [FAKTA / ARGUMEN / CAMPURAN]

ANALISIS:
• Klasifikasi: [pernyataan objektif/subjektif]
• Bukti: [ada data pendukung/berdasarkan opini]
• Sifat: [dapat diverifikasi/bersifat persuasif]

PENJELASAN:
[1-2 kalimat mengapa dikategorikan sebagai fakta atau argumen]

INDIKATOR:
• [kata/frasa yang menunjukkan fakta atau argumen]

KEPERCAYAAN: [XX]%%

Teks: "%s"

` + plainAnswer

type Prompts struct{}

func (Prompts) ImagePrompt(kind domain.ImageKind, food string) (string, error) {
	switch kind {
	case domain.ImageKindAnimal:
		return fmt.Sprintf(AnimalPrompt, food), nil
	case domain.ImageKindPlant:
		return PlantPrompt, nil
	case domain.ImageKindMedicinal:
		return MedicinalPrompt, nil
	case domain.ImageKindHistorical:
		return HistoricalImagePrompt, nil
	}
	return "", domain.ErrUnknownImageKind
}

func (Prompts) TextPrompt(analysis domain.TextAnalysisType, text string) (string, error) {
	switch analysis {
	case domain.TextAnalysisSentiment:
		return fmt.Sprintf(SentimentPrompt, text), nil
	case domain.TextAnalysisLanguage:
		return fmt.Sprintf(LanguagePrompt, text), nil
	case domain.TextAnalysisKeywords:
		return fmt.Sprintf(KeywordsPrompt, text), nil
	case domain.TextAnalysisFactArgument:
		return fmt.Sprintf(FactArgumentPrompt, text), nil
	}
	return "", domain.ErrUnknownAnalysis
}

func (Prompts) HistorySearchPrompt(query string) string {
	return fmt.Sprintf(HistorySearchPrompt, query)
}

func (Prompts) HistoryFallbackPrompt(query string) string {
	return fmt.Sprintf(HistoryFallbackPrompt, query)
}
