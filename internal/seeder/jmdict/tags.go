package jmdict

// JMdict element names.
const (
	tagEntry  = "entry"
	tagEntSeq = "ent_seq"

	tagKEle  = "k_ele"
	tagKeb   = "keb"
	tagKeInf = "ke_inf"
	tagKePri = "ke_pri"

	tagREle      = "r_ele"
	tagReb       = "reb"
	tagReNoKanji = "re_nokanji"
	tagReRestr   = "re_restr"
	tagReInf     = "re_inf"
	tagRePri     = "re_pri"

	tagSense = "sense"
	tagStagk = "stagk"
	tagStagr = "stagr"
	tagPos   = "pos"
	tagXref  = "xref"
	tagGloss = "gloss"

	attrLang = "xml:lang"
)
