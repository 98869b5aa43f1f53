package lang

// Lang is a closed-set ISO 639-3 language code, plus the two sentinel
// codes und (undetermined, confidence too low) and zxx (no linguistic
// content, nothing to score).
type Lang uint8

const (
	Ace Lang = iota
	Acm
	Acq
	Aeb
	Afr
	Aka
	Als
	Amh
	Apc
	Arb
	Ars
	Ary
	Arz
	Asm
	Ast
	Awa
	Aym
	Ayr
	Azb
	Aze
	Azj
	Bak
	Bam
	Ban
	Bel
	Bem
	Ben
	Bho
	Bjn
	Bod
	Bos
	Bug
	Bul
	Cat
	Ceb
	Ces
	Cjk
	Ckb
	Cmn
	Crh
	Cym
	Dan
	Deu
	Dik
	Din
	Dyu
	Dzo
	Ekk
	Ell
	Eng
	Epo
	Eus
	Ewe
	Fao
	Fas
	Fij
	Fil
	Fin
	Fon
	Fra
	Ful
	Fur
	Fuv
	Gaz
	Gla
	Gle
	Glg
	Gug
	Guj
	Hat
	Hau
	Hbs
	Heb
	Hin
	Hne
	Hrv
	Hun
	Hye
	Ibo
	Ilo
	Ind
	Isl
	Ita
	Jav
	Jpn
	Kab
	Kac
	Kam
	Kan
	Kas
	Kat
	Kau
	Kaz
	Kbp
	Kea
	Khk
	Khm
	Kik
	Kin
	Kir
	Kmb
	Kmr
	Knc
	Kor
	Ktu
	Kur
	Lao
	Lav
	Lij
	Lim
	Lin
	Lit
	Lmo
	Ltg
	Ltz
	Lua
	Lug
	Luo
	Lus
	Lvs
	Mag
	Mai
	Mal
	Mar
	Min
	Mkd
	Mlg
	Mlt
	Mni
	Mon
	Mos
	Mri
	Mya
	Nep
	Nld
	Nno
	Nob
	Npi
	Nso
	Nus
	Nya
	Oci
	Ori
	Orm
	Ory
	Pag
	Pan
	Pap
	Pbt
	Pes
	Plt
	Pol
	Por
	Prs
	Pus
	Que
	Quy
	Ron
	Run
	Rus
	Sag
	San
	Sat
	Scn
	Shn
	Sin
	Slk
	Slv
	Smo
	Sna
	Snd
	Som
	Sot
	Spa
	Sqi
	Srd
	Srp
	Ssw
	Sun
	Swa
	Swe
	Swh
	Szl
	Tam
	Taq
	Tat
	Tel
	Tgk
	Tha
	Tir
	Tmh
	Tpi
	Tsn
	Tso
	Tuk
	Tum
	Tur
	Twi
	Uig
	Ukr
	Umb
	Urd
	Uzb
	Uzn
	Vec
	Vie
	War
	Wol
	Xho
	Ydd
	Yid
	Yor
	Yue
	Zgh
	Zho
	Zsm
	Zul
	Und
	Zxx
)

// NumLangs is the size of the closed language set, sentinels included.
const NumLangs = 219

var names = [NumLangs]string{
	"ace",
	"acm",
	"acq",
	"aeb",
	"afr",
	"aka",
	"als",
	"amh",
	"apc",
	"arb",
	"ars",
	"ary",
	"arz",
	"asm",
	"ast",
	"awa",
	"aym",
	"ayr",
	"azb",
	"aze",
	"azj",
	"bak",
	"bam",
	"ban",
	"bel",
	"bem",
	"ben",
	"bho",
	"bjn",
	"bod",
	"bos",
	"bug",
	"bul",
	"cat",
	"ceb",
	"ces",
	"cjk",
	"ckb",
	"cmn",
	"crh",
	"cym",
	"dan",
	"deu",
	"dik",
	"din",
	"dyu",
	"dzo",
	"ekk",
	"ell",
	"eng",
	"epo",
	"eus",
	"ewe",
	"fao",
	"fas",
	"fij",
	"fil",
	"fin",
	"fon",
	"fra",
	"ful",
	"fur",
	"fuv",
	"gaz",
	"gla",
	"gle",
	"glg",
	"gug",
	"guj",
	"hat",
	"hau",
	"hbs",
	"heb",
	"hin",
	"hne",
	"hrv",
	"hun",
	"hye",
	"ibo",
	"ilo",
	"ind",
	"isl",
	"ita",
	"jav",
	"jpn",
	"kab",
	"kac",
	"kam",
	"kan",
	"kas",
	"kat",
	"kau",
	"kaz",
	"kbp",
	"kea",
	"khk",
	"khm",
	"kik",
	"kin",
	"kir",
	"kmb",
	"kmr",
	"knc",
	"kor",
	"ktu",
	"kur",
	"lao",
	"lav",
	"lij",
	"lim",
	"lin",
	"lit",
	"lmo",
	"ltg",
	"ltz",
	"lua",
	"lug",
	"luo",
	"lus",
	"lvs",
	"mag",
	"mai",
	"mal",
	"mar",
	"min",
	"mkd",
	"mlg",
	"mlt",
	"mni",
	"mon",
	"mos",
	"mri",
	"mya",
	"nep",
	"nld",
	"nno",
	"nob",
	"npi",
	"nso",
	"nus",
	"nya",
	"oci",
	"ori",
	"orm",
	"ory",
	"pag",
	"pan",
	"pap",
	"pbt",
	"pes",
	"plt",
	"pol",
	"por",
	"prs",
	"pus",
	"que",
	"quy",
	"ron",
	"run",
	"rus",
	"sag",
	"san",
	"sat",
	"scn",
	"shn",
	"sin",
	"slk",
	"slv",
	"smo",
	"sna",
	"snd",
	"som",
	"sot",
	"spa",
	"sqi",
	"srd",
	"srp",
	"ssw",
	"sun",
	"swa",
	"swe",
	"swh",
	"szl",
	"tam",
	"taq",
	"tat",
	"tel",
	"tgk",
	"tha",
	"tir",
	"tmh",
	"tpi",
	"tsn",
	"tso",
	"tuk",
	"tum",
	"tur",
	"twi",
	"uig",
	"ukr",
	"umb",
	"urd",
	"uzb",
	"uzn",
	"vec",
	"vie",
	"war",
	"wol",
	"xho",
	"ydd",
	"yid",
	"yor",
	"yue",
	"zgh",
	"zho",
	"zsm",
	"zul",
	"und",
	"zxx",
}

// String returns the three-letter ISO 639-3 code, or und/zxx for the sentinels.
func (l Lang) String() string {
	if int(l) >= NumLangs {
		return "invalid"
	}
	return names[l]
}

// Parse looks up a Lang by its ISO 639-3 code (or und/zxx). Parse reports
// ok=false for any code outside the closed set.
func Parse(code string) (l Lang, ok bool) {
	l, ok = byName[code]
	return
}

var byName = func() map[string]Lang {
	m := make(map[string]Lang, NumLangs)
	for i, n := range names {
		m[n] = Lang(i)
	}
	return m
}()
