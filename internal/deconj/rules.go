package deconj

import "github.com/japaniel/minecore/internal/model"

type rule struct {
	base           string
	conjugated     string
	baseType       model.WordForm
	conjugatedType model.WordForm
}

// silentRules are single-step re-classifications that don't change spelling
// but reclassify a terminal form as belonging to another conjugation class,
// enabling chains like 食べたくなかった -> 食べたい -> 食べる.
var silentRules = []rule{
	{"ない", "ない", model.FormNegative, model.FormAdjective},
	{"たい", "たい", model.FormTai, model.FormAdjective},
	{"せる", "せる", model.FormCausative, model.FormIchidanVerb},
	{"れる", "れる", model.FormPassive, model.FormIchidanVerb},
	{"る", "る", model.FormPotential, model.FormIchidanVerb},
	{"られる", "られる", model.FormPotentialPassive, model.FormIchidanVerb},
	{"しまう", "しまう", model.FormShimau, model.FormGodanVerb},
	{"ゃう", "ゃう", model.FormChau, model.FormGodanVerb},
	{"まう", "まう", model.FormChimau, model.FormGodanVerb},
	{"る", "る", model.FormContinuous, model.FormIchidanVerb},
	{"おる", "おる", model.FormContinuous, model.FormGodanVerb},
	{"すぎる", "すぎる", model.FormSugiru, model.FormIchidanVerb},
	{"とく", "とく", model.FormToku, model.FormGodanVerb},
}

// rules is the backward-conjugation table: (base_ending, conjugated_ending,
// base_form, conjugated_form). Ported by semantics (not by text) from
// original_source/src/dict/deconjugator.cpp.
var rules = []rule{
	// Negative
	{"る", "らない", model.FormGodanVerb, model.FormNegative},
	{"う", "わない", model.FormGodanVerb, model.FormNegative},
	{"つ", "たない", model.FormGodanVerb, model.FormNegative},
	{"す", "さない", model.FormGodanVerb, model.FormNegative},
	{"く", "かない", model.FormGodanVerb, model.FormNegative},
	{"ぐ", "がない", model.FormGodanVerb, model.FormNegative},
	{"ぶ", "ばない", model.FormGodanVerb, model.FormNegative},
	{"む", "まない", model.FormGodanVerb, model.FormNegative},
	{"ぬ", "なない", model.FormGodanVerb, model.FormNegative},
	{"る", "ない", model.FormIchidanVerb, model.FormNegative},
	{"くる", "こない", model.FormKuruVerb, model.FormNegative},
	{"来る", "来ない", model.FormKuruVerb, model.FormNegative},
	{"する", "しない", model.FormSuruVerb, model.FormNegative},
	{"為る", "為ない", model.FormSuruVerb, model.FormNegative},

	// Past
	{"る", "った", model.FormGodanVerb, model.FormPast},
	{"う", "った", model.FormGodanVerb, model.FormPast},
	{"つ", "った", model.FormGodanVerb, model.FormPast},
	{"す", "した", model.FormGodanVerb, model.FormPast},
	{"く", "いた", model.FormGodanVerb, model.FormPast},
	{"ぐ", "いだ", model.FormGodanVerb, model.FormPast},
	{"ぶ", "んだ", model.FormGodanVerb, model.FormPast},
	{"む", "んだ", model.FormGodanVerb, model.FormPast},
	{"ぬ", "んだ", model.FormGodanVerb, model.FormPast},
	{"る", "た", model.FormIchidanVerb, model.FormPast},
	{"くる", "きた", model.FormKuruVerb, model.FormPast},
	{"来る", "来た", model.FormKuruVerb, model.FormPast},
	{"する", "した", model.FormSuruVerb, model.FormPast},
	{"為る", "為た", model.FormSuruVerb, model.FormPast},
	{"行く", "行った", model.FormGodanVerb, model.FormPast},
	{"いく", "いった", model.FormGodanVerb, model.FormPast},
	{"問う", "問うた", model.FormGodanVerb, model.FormPast},
	{"とう", "とうた", model.FormGodanVerb, model.FormPast},
	{"請う", "請うた", model.FormGodanVerb, model.FormPast},
	{"こう", "こうた", model.FormGodanVerb, model.FormPast},

	// Te
	{"る", "って", model.FormGodanVerb, model.FormTe},
	{"う", "って", model.FormGodanVerb, model.FormTe},
	{"つ", "って", model.FormGodanVerb, model.FormTe},
	{"す", "して", model.FormGodanVerb, model.FormTe},
	{"く", "いて", model.FormGodanVerb, model.FormTe},
	{"ぐ", "いで", model.FormGodanVerb, model.FormTe},
	{"ぶ", "んで", model.FormGodanVerb, model.FormTe},
	{"ぬ", "んで", model.FormGodanVerb, model.FormTe},
	{"む", "んで", model.FormGodanVerb, model.FormTe},
	{"る", "て", model.FormIchidanVerb, model.FormTe},
	{"くる", "きて", model.FormKuruVerb, model.FormTe},
	{"来る", "来て", model.FormKuruVerb, model.FormTe},
	{"する", "して", model.FormSuruVerb, model.FormTe},
	{"為る", "為て", model.FormSuruVerb, model.FormTe},
	{"行く", "行って", model.FormGodanVerb, model.FormTe},
	{"いく", "いって", model.FormGodanVerb, model.FormTe},
	{"問う", "問うて", model.FormGodanVerb, model.FormTe},
	{"とう", "とうて", model.FormGodanVerb, model.FormTe},
	{"請う", "請うて", model.FormGodanVerb, model.FormTe},
	{"こう", "こうて", model.FormGodanVerb, model.FormTe},

	// Toku
	{"る", "っとく", model.FormGodanVerb, model.FormToku},
	{"う", "っとく", model.FormGodanVerb, model.FormToku},
	{"つ", "っとく", model.FormGodanVerb, model.FormToku},
	{"す", "しとく", model.FormGodanVerb, model.FormToku},
	{"く", "いとく", model.FormGodanVerb, model.FormToku},
	{"ぐ", "いどく", model.FormGodanVerb, model.FormToku},
	{"ぶ", "んどく", model.FormGodanVerb, model.FormToku},
	{"ぬ", "んどく", model.FormGodanVerb, model.FormToku},
	{"む", "んどく", model.FormGodanVerb, model.FormToku},
	{"る", "とく", model.FormIchidanVerb, model.FormToku},
	{"くる", "きとく", model.FormKuruVerb, model.FormToku},
	{"来る", "来とく", model.FormKuruVerb, model.FormToku},
	{"する", "しとく", model.FormSuruVerb, model.FormToku},
	{"為る", "為とく", model.FormSuruVerb, model.FormToku},
	{"行く", "行っとく", model.FormGodanVerb, model.FormToku},
	{"問う", "問うとく", model.FormGodanVerb, model.FormToku},
	{"請う", "請うとく", model.FormGodanVerb, model.FormToku},

	// Imperative
	{"る", "れ", model.FormGodanVerb, model.FormImperative},
	{"う", "え", model.FormGodanVerb, model.FormImperative},
	{"つ", "て", model.FormGodanVerb, model.FormImperative},
	{"す", "せ", model.FormGodanVerb, model.FormImperative},
	{"く", "け", model.FormGodanVerb, model.FormImperative},
	{"ぐ", "げ", model.FormGodanVerb, model.FormImperative},
	{"ぶ", "べ", model.FormGodanVerb, model.FormImperative},
	{"む", "め", model.FormGodanVerb, model.FormImperative},
	{"ぬ", "ね", model.FormGodanVerb, model.FormImperative},
	{"る", "ろ", model.FormIchidanVerb, model.FormImperative},
	{"る", "よ", model.FormIchidanVerb, model.FormImperative},
	{"くる", "こい", model.FormKuruVerb, model.FormImperative},
	{"来る", "来い", model.FormKuruVerb, model.FormImperative},
	{"する", "しろ", model.FormSuruVerb, model.FormImperative},
	{"為る", "為ろ", model.FormSuruVerb, model.FormImperative},
	{"する", "せよ", model.FormSuruVerb, model.FormImperative},
	{"為る", "為よ", model.FormSuruVerb, model.FormImperative},

	// Volitional
	{"る", "ろう", model.FormGodanVerb, model.FormVolitional},
	{"う", "おう", model.FormGodanVerb, model.FormVolitional},
	{"つ", "とう", model.FormGodanVerb, model.FormVolitional},
	{"す", "そう", model.FormGodanVerb, model.FormVolitional},
	{"く", "こう", model.FormGodanVerb, model.FormVolitional},
	{"ぐ", "ごう", model.FormGodanVerb, model.FormVolitional},
	{"ぶ", "ぼう", model.FormGodanVerb, model.FormVolitional},
	{"む", "もう", model.FormGodanVerb, model.FormVolitional},
	{"ぬ", "のう", model.FormGodanVerb, model.FormVolitional},
	{"る", "よう", model.FormIchidanVerb, model.FormVolitional},
	{"くる", "こよう", model.FormKuruVerb, model.FormVolitional},
	{"来る", "来よう", model.FormKuruVerb, model.FormVolitional},
	{"する", "しよう", model.FormSuruVerb, model.FormVolitional},
	{"為る", "為よう", model.FormSuruVerb, model.FormVolitional},

	// Passive
	{"る", "られる", model.FormGodanVerb, model.FormPassive},
	{"う", "われる", model.FormGodanVerb, model.FormPassive},
	{"つ", "たれる", model.FormGodanVerb, model.FormPassive},
	{"す", "される", model.FormGodanVerb, model.FormPassive},
	{"く", "かれる", model.FormGodanVerb, model.FormPassive},
	{"ぐ", "がれる", model.FormGodanVerb, model.FormPassive},
	{"ぶ", "ばれる", model.FormGodanVerb, model.FormPassive},
	{"む", "まれる", model.FormGodanVerb, model.FormPassive},
	{"ぬ", "なれる", model.FormGodanVerb, model.FormPassive},
	{"る", "られる", model.FormIchidanVerb, model.FormPotentialPassive},
	{"くる", "こられる", model.FormKuruVerb, model.FormPotentialPassive},
	{"来る", "来られる", model.FormKuruVerb, model.FormPotentialPassive},
	{"する", "される", model.FormSuruVerb, model.FormPassive},
	{"為る", "為れる", model.FormSuruVerb, model.FormPassive},

	// Potential
	{"る", "れる", model.FormGodanVerb, model.FormPotential},
	{"う", "える", model.FormGodanVerb, model.FormPotential},
	{"つ", "てる", model.FormGodanVerb, model.FormPotential},
	{"す", "せる", model.FormGodanVerb, model.FormPotential},
	{"く", "ける", model.FormGodanVerb, model.FormPotential},
	{"ぐ", "げる", model.FormGodanVerb, model.FormPotential},
	{"ぶ", "べる", model.FormGodanVerb, model.FormPotential},
	{"む", "める", model.FormGodanVerb, model.FormPotential},
	{"ぬ", "ねる", model.FormGodanVerb, model.FormPotential},
	{"る", "れる", model.FormIchidanVerb, model.FormPotential},
	{"くる", "これる", model.FormKuruVerb, model.FormPotential},
	{"来る", "来れる", model.FormKuruVerb, model.FormPotential},
	{"する", "できる", model.FormSuruVerb, model.FormPotential},

	// Causative
	{"る", "らせる", model.FormGodanVerb, model.FormCausative},
	{"う", "わせる", model.FormGodanVerb, model.FormCausative},
	{"つ", "たせる", model.FormGodanVerb, model.FormCausative},
	{"す", "させる", model.FormGodanVerb, model.FormCausative},
	{"く", "かせる", model.FormGodanVerb, model.FormCausative},
	{"ぐ", "がせる", model.FormGodanVerb, model.FormCausative},
	{"ぶ", "ばせる", model.FormGodanVerb, model.FormCausative},
	{"む", "ませる", model.FormGodanVerb, model.FormCausative},
	{"ぬ", "なせる", model.FormGodanVerb, model.FormCausative},
	{"る", "させる", model.FormIchidanVerb, model.FormCausative},
	{"くる", "こさせる", model.FormKuruVerb, model.FormCausative},
	{"来る", "来させる", model.FormKuruVerb, model.FormCausative},
	{"する", "させる", model.FormSuruVerb, model.FormCausative},
	{"為る", "為せる", model.FormSuruVerb, model.FormCausative},

	// Ba
	{"る", "れば", model.FormGodanVerb, model.FormBa},
	{"う", "えば", model.FormGodanVerb, model.FormBa},
	{"つ", "てば", model.FormGodanVerb, model.FormBa},
	{"す", "せば", model.FormGodanVerb, model.FormBa},
	{"く", "けば", model.FormGodanVerb, model.FormBa},
	{"ぐ", "げば", model.FormGodanVerb, model.FormBa},
	{"ぶ", "べば", model.FormGodanVerb, model.FormBa},
	{"む", "めば", model.FormGodanVerb, model.FormBa},
	{"ぬ", "ねば", model.FormGodanVerb, model.FormBa},
	{"る", "れば", model.FormIchidanVerb, model.FormBa},
	{"くる", "くれば", model.FormKuruVerb, model.FormBa},
	{"来る", "来れば", model.FormKuruVerb, model.FormBa},
	{"する", "すれば", model.FormSuruVerb, model.FormBa},
	{"為る", "為れば", model.FormSuruVerb, model.FormBa},

	// Zaru
	{"る", "らざる", model.FormGodanVerb, model.FormZaru},
	{"う", "わざる", model.FormGodanVerb, model.FormZaru},
	{"つ", "たざる", model.FormGodanVerb, model.FormZaru},
	{"す", "さざる", model.FormGodanVerb, model.FormZaru},
	{"く", "かざる", model.FormGodanVerb, model.FormZaru},
	{"ぐ", "がざる", model.FormGodanVerb, model.FormZaru},
	{"ぶ", "ばざる", model.FormGodanVerb, model.FormZaru},
	{"む", "まざる", model.FormGodanVerb, model.FormZaru},
	{"ぬ", "なざる", model.FormGodanVerb, model.FormZaru},
	{"る", "ざる", model.FormIchidanVerb, model.FormZaru},
	{"くる", "こざる", model.FormKuruVerb, model.FormZaru},
	{"来る", "来ざる", model.FormKuruVerb, model.FormZaru},
	{"する", "せざる", model.FormSuruVerb, model.FormZaru},
	{"為る", "為ざる", model.FormSuruVerb, model.FormZaru},

	// Neba
	{"る", "らねば", model.FormGodanVerb, model.FormNeba},
	{"う", "わねば", model.FormGodanVerb, model.FormNeba},
	{"つ", "たねば", model.FormGodanVerb, model.FormNeba},
	{"す", "さねば", model.FormGodanVerb, model.FormNeba},
	{"く", "かねば", model.FormGodanVerb, model.FormNeba},
	{"ぐ", "がねば", model.FormGodanVerb, model.FormNeba},
	{"ぶ", "ばねば", model.FormGodanVerb, model.FormNeba},
	{"む", "まねば", model.FormGodanVerb, model.FormNeba},
	{"ぬ", "なねば", model.FormGodanVerb, model.FormNeba},
	{"る", "ねば", model.FormIchidanVerb, model.FormNeba},
	{"くる", "こねば", model.FormKuruVerb, model.FormNeba},
	{"来る", "来ねば", model.FormKuruVerb, model.FormNeba},
	{"する", "せねば", model.FormSuruVerb, model.FormNeba},
	{"為る", "為ねば", model.FormSuruVerb, model.FormNeba},

	// Zu
	{"る", "らず", model.FormGodanVerb, model.FormZu},
	{"う", "わず", model.FormGodanVerb, model.FormZu},
	{"つ", "たず", model.FormGodanVerb, model.FormZu},
	{"す", "さず", model.FormGodanVerb, model.FormZu},
	{"く", "かず", model.FormGodanVerb, model.FormZu},
	{"ぐ", "がず", model.FormGodanVerb, model.FormZu},
	{"ぶ", "ばず", model.FormGodanVerb, model.FormZu},
	{"む", "まず", model.FormGodanVerb, model.FormZu},
	{"ぬ", "なず", model.FormGodanVerb, model.FormZu},
	{"る", "ず", model.FormIchidanVerb, model.FormZu},
	{"くる", "こず", model.FormKuruVerb, model.FormZu},
	{"来る", "来ず", model.FormKuruVerb, model.FormZu},
	{"する", "せず", model.FormSuruVerb, model.FormZu},
	{"為る", "為ず", model.FormSuruVerb, model.FormZu},

	// Nu
	{"る", "らぬ", model.FormGodanVerb, model.FormNu},
	{"う", "わぬ", model.FormGodanVerb, model.FormNu},
	{"つ", "たぬ", model.FormGodanVerb, model.FormNu},
	{"す", "さぬ", model.FormGodanVerb, model.FormNu},
	{"く", "かぬ", model.FormGodanVerb, model.FormNu},
	{"ぐ", "がぬ", model.FormGodanVerb, model.FormNu},
	{"ぶ", "ばぬ", model.FormGodanVerb, model.FormNu},
	{"む", "まぬ", model.FormGodanVerb, model.FormNu},
	{"ぬ", "なぬ", model.FormGodanVerb, model.FormNu},
	{"る", "ぬ", model.FormIchidanVerb, model.FormNu},
	{"くる", "こぬ", model.FormKuruVerb, model.FormNu},
	{"来る", "来ぬ", model.FormKuruVerb, model.FormNu},
	{"する", "せぬ", model.FormSuruVerb, model.FormNu},
	{"為る", "為ぬ", model.FormSuruVerb, model.FormNu},

	// Colloquial Masculine Negative
	{"る", "らん", model.FormGodanVerb, model.FormColloquialNegative},
	{"う", "わん", model.FormGodanVerb, model.FormColloquialNegative},
	{"つ", "たん", model.FormGodanVerb, model.FormColloquialNegative},
	{"す", "さん", model.FormGodanVerb, model.FormColloquialNegative},
	{"く", "かん", model.FormGodanVerb, model.FormColloquialNegative},
	{"ぐ", "がん", model.FormGodanVerb, model.FormColloquialNegative},
	{"ぶ", "ばん", model.FormGodanVerb, model.FormColloquialNegative},
	{"む", "まん", model.FormGodanVerb, model.FormColloquialNegative},
	{"ぬ", "なん", model.FormGodanVerb, model.FormColloquialNegative},
	{"る", "ん", model.FormIchidanVerb, model.FormColloquialNegative},
	{"くる", "こん", model.FormKuruVerb, model.FormColloquialNegative},
	{"来る", "来ん", model.FormKuruVerb, model.FormColloquialNegative},
	{"する", "せん", model.FormSuruVerb, model.FormColloquialNegative},
	{"為る", "為ん", model.FormSuruVerb, model.FormColloquialNegative},

	// Colloquial provisional Negative
	{"る", "らなきゃ", model.FormGodanVerb, model.FormProvisionalColloquialNegative},
	{"う", "わなきゃ", model.FormGodanVerb, model.FormProvisionalColloquialNegative},
	{"つ", "たなきゃ", model.FormGodanVerb, model.FormProvisionalColloquialNegative},
	{"す", "さなきゃ", model.FormGodanVerb, model.FormProvisionalColloquialNegative},
	{"く", "かなきゃ", model.FormGodanVerb, model.FormProvisionalColloquialNegative},
	{"ぐ", "がなきゃ", model.FormGodanVerb, model.FormProvisionalColloquialNegative},
	{"ぶ", "ばなきゃ", model.FormGodanVerb, model.FormProvisionalColloquialNegative},
	{"む", "まなきゃ", model.FormGodanVerb, model.FormProvisionalColloquialNegative},
	{"ぬ", "ななきゃ", model.FormGodanVerb, model.FormProvisionalColloquialNegative},
	{"る", "なきゃ", model.FormIchidanVerb, model.FormProvisionalColloquialNegative},
	{"くる", "こなきゃ", model.FormKuruVerb, model.FormProvisionalColloquialNegative},
	{"来る", "来なきゃ", model.FormKuruVerb, model.FormProvisionalColloquialNegative},
	{"する", "しなきゃ", model.FormSuruVerb, model.FormProvisionalColloquialNegative},
	{"為る", "為なきゃ", model.FormSuruVerb, model.FormProvisionalColloquialNegative},

	// Imperative Negative
	{"る", "るな", model.FormGodanVerb, model.FormImperativeNegative},
	{"う", "うな", model.FormGodanVerb, model.FormImperativeNegative},
	{"つ", "つな", model.FormGodanVerb, model.FormImperativeNegative},
	{"す", "すな", model.FormGodanVerb, model.FormImperativeNegative},
	{"く", "くな", model.FormGodanVerb, model.FormImperativeNegative},
	{"ぐ", "ぐな", model.FormGodanVerb, model.FormImperativeNegative},
	{"ぶ", "ぶな", model.FormGodanVerb, model.FormImperativeNegative},
	{"む", "むな", model.FormGodanVerb, model.FormImperativeNegative},
	{"ぬ", "ぬな", model.FormGodanVerb, model.FormImperativeNegative},
	{"る", "るな", model.FormIchidanVerb, model.FormImperativeNegative},
	{"くる", "くるな", model.FormKuruVerb, model.FormImperativeNegative},
	{"来る", "来るな", model.FormKuruVerb, model.FormImperativeNegative},
	{"する", "するな", model.FormSuruVerb, model.FormImperativeNegative},
	{"為る", "為るな", model.FormSuruVerb, model.FormImperativeNegative},

	// Tari
	{"る", "ったり", model.FormGodanVerb, model.FormTari},
	{"う", "ったり", model.FormGodanVerb, model.FormTari},
	{"つ", "ったり", model.FormGodanVerb, model.FormTari},
	{"す", "したり", model.FormGodanVerb, model.FormTari},
	{"く", "いたり", model.FormGodanVerb, model.FormTari},
	{"ぐ", "いだり", model.FormGodanVerb, model.FormTari},
	{"ぶ", "んだり", model.FormGodanVerb, model.FormTari},
	{"む", "んだり", model.FormGodanVerb, model.FormTari},
	{"ぬ", "んだり", model.FormGodanVerb, model.FormTari},
	{"る", "たり", model.FormIchidanVerb, model.FormTari},
	{"くる", "きたり", model.FormKuruVerb, model.FormTari},
	{"来る", "来たり", model.FormKuruVerb, model.FormTari},
	{"する", "したり", model.FormSuruVerb, model.FormTari},
	{"為る", "為たり", model.FormSuruVerb, model.FormTari},
	{"行く", "行ったり", model.FormGodanVerb, model.FormTari},
	{"問う", "問うたり", model.FormGodanVerb, model.FormTari},
	{"請う", "請うたり", model.FormGodanVerb, model.FormTari},

	// Chau
	{"る", "っちゃう", model.FormGodanVerb, model.FormChau},
	{"う", "っちゃう", model.FormGodanVerb, model.FormChau},
	{"つ", "っちゃう", model.FormGodanVerb, model.FormChau},
	{"す", "しちゃう", model.FormGodanVerb, model.FormChau},
	{"く", "いちゃう", model.FormGodanVerb, model.FormChau},
	{"ぐ", "いちゃう", model.FormGodanVerb, model.FormChau},
	{"ぶ", "んじゃう", model.FormGodanVerb, model.FormChau},
	{"ぬ", "んじゃう", model.FormGodanVerb, model.FormChau},
	{"む", "んじゃう", model.FormGodanVerb, model.FormChau},
	{"る", "ちゃう", model.FormIchidanVerb, model.FormChau},
	{"くる", "きちゃう", model.FormKuruVerb, model.FormChau},
	{"来る", "来ちゃう", model.FormKuruVerb, model.FormChau},
	{"する", "しちゃう", model.FormSuruVerb, model.FormChau},
	{"為る", "為ちゃう", model.FormSuruVerb, model.FormChau},
	{"行く", "行っちゃう", model.FormGodanVerb, model.FormChau},
	{"問う", "問うちゃう", model.FormGodanVerb, model.FormChau},
	{"請う", "請うちゃう", model.FormGodanVerb, model.FormChau},

	// Chimau
	{"る", "っちまう", model.FormGodanVerb, model.FormChimau},
	{"う", "っちまう", model.FormGodanVerb, model.FormChimau},
	{"つ", "っちまう", model.FormGodanVerb, model.FormChimau},
	{"す", "しちまう", model.FormGodanVerb, model.FormChimau},
	{"く", "いちまう", model.FormGodanVerb, model.FormChimau},
	{"ぐ", "いちまう", model.FormGodanVerb, model.FormChimau},
	{"ぶ", "んじまう", model.FormGodanVerb, model.FormChimau},
	{"ぬ", "んじまう", model.FormGodanVerb, model.FormChimau},
	{"む", "んじまう", model.FormGodanVerb, model.FormChimau},
	{"る", "ちまう", model.FormIchidanVerb, model.FormChimau},
	{"くる", "きちまう", model.FormKuruVerb, model.FormChimau},
	{"来る", "来ちまう", model.FormKuruVerb, model.FormChimau},
	{"する", "しちまう", model.FormSuruVerb, model.FormChimau},
	{"為る", "為ちまう", model.FormSuruVerb, model.FormChimau},
	{"行く", "行っちまう", model.FormGodanVerb, model.FormChimau},
	{"問う", "問うちゃう", model.FormGodanVerb, model.FormChimau},
	{"請う", "請うちゃう", model.FormGodanVerb, model.FormChimau},

	// Continuous
	{"で", "でいる", model.FormTe, model.FormContinuous},
	{"て", "ている", model.FormTe, model.FormContinuous},
	{"で", "でおる", model.FormTe, model.FormContinuous},
	{"て", "ておる", model.FormTe, model.FormContinuous},
	{"で", "でる", model.FormTe, model.FormContinuous},
	{"て", "てる", model.FormTe, model.FormContinuous},
	{"て", "とる", model.FormTe, model.FormContinuous},

	// Shimau
	{"で", "でしまう", model.FormTe, model.FormShimau},
	{"て", "てしまう", model.FormTe, model.FormShimau},

	// Adjectives
	{"い", "くて", model.FormAdjective, model.FormTe},
	{"い", "く", model.FormAdjective, model.FormAdverbial},
	{"い", "くない", model.FormAdjective, model.FormNegative},
	{"い", "かった", model.FormAdjective, model.FormPast},
	{"い", "ければ", model.FormAdjective, model.FormBa},
	{"い", "くなきゃ", model.FormAdjective, model.FormProvisionalColloquialNegative},
	{"い", "かったら", model.FormAdjective, model.FormTara},
	{"い", "さ", model.FormAdjective, model.FormNoun},
	{"い", "そう", model.FormAdjective, model.FormSou},
	{"い", "すぎる", model.FormAdjective, model.FormSugiru},
	{"い", "き", model.FormAdjective, model.FormKi},
	{"い", "かろう", model.FormAdjective, model.FormVolitional},
	{"ない", "ねえ", model.FormAdjective, model.FormE},
	{"ない", "ねぇ", model.FormAdjective, model.FormE},
	{"ない", "ねー", model.FormAdjective, model.FormE},
	{"たい", "てえ", model.FormAdjective, model.FormE},
	{"たい", "てぇ", model.FormAdjective, model.FormE},
	{"たい", "てー", model.FormAdjective, model.FormE},

	// Conjunctive (masu stem)
	{"る", "り", model.FormGodanVerb, model.FormConjunctive},
	{"う", "い", model.FormGodanVerb, model.FormConjunctive},
	{"つ", "ち", model.FormGodanVerb, model.FormConjunctive},
	{"す", "し", model.FormGodanVerb, model.FormConjunctive},
	{"く", "き", model.FormGodanVerb, model.FormConjunctive},
	{"ぐ", "ぎ", model.FormGodanVerb, model.FormConjunctive},
	{"ぶ", "び", model.FormGodanVerb, model.FormConjunctive},
	{"む", "み", model.FormGodanVerb, model.FormConjunctive},
	{"ぬ", "に", model.FormGodanVerb, model.FormConjunctive},
	{"る", "", model.FormIchidanVerb, model.FormConjunctive},
	{"くる", "き", model.FormKuruVerb, model.FormConjunctive},
	{"来る", "来", model.FormKuruVerb, model.FormConjunctive},
	{"する", "し", model.FormSuruVerb, model.FormConjunctive},
	{"為る", "為", model.FormSuruVerb, model.FormConjunctive},

	// Stem forms
	{"", "ます", model.FormConjunctive, model.FormPolite},
	{"ます", "ません", model.FormPolite, model.FormNegative},
	{"ます", "ました", model.FormPolite, model.FormPast},
	{"ます", "ましょう", model.FormPolite, model.FormVolitional},
	{"せん", "せんでした", model.FormNegative, model.FormPast},
	{"", "たら", model.FormConjunctive, model.FormTara},
	{"", "たい", model.FormConjunctive, model.FormTai},
	{"", "なさい", model.FormConjunctive, model.FormNasai},
	{"", "そう", model.FormConjunctive, model.FormSou},
	{"", "すぎる", model.FormConjunctive, model.FormSugiru},
}

var wordFormNames = map[model.WordForm]string{
	model.FormGodanVerb:                         "godan verb",
	model.FormIchidanVerb:                       "ichidan verb",
	model.FormSuruVerb:                          "suru verb",
	model.FormKuruVerb:                          "kuru verb",
	model.FormAdjective:                         "adjective",
	model.FormNegative:                          "negative",
	model.FormPast:                              "past",
	model.FormTe:                                "-te",
	model.FormConjunctive:                       "masu stem",
	model.FormVolitional:                        "volitional",
	model.FormPassive:                           "passive",
	model.FormCausative:                         "causative",
	model.FormImperative:                        "imperative",
	model.FormPotential:                         "potential",
	model.FormPotentialPassive:                  "potential or passive",
	model.FormImperativeNegative:                "imperative negative",
	model.FormZaru:                              "-zaru",
	model.FormNeba:                              "-neba",
	model.FormZu:                                "-zu",
	model.FormNu:                                "-nu",
	model.FormBa:                                "-ba",
	model.FormTari:                              "-tari",
	model.FormShimau:                            "-shimau",
	model.FormChau:                              "-chau",
	model.FormChimau:                            "-chimau",
	model.FormPolite:                            "polite",
	model.FormTara:                              "-tara",
	model.FormTai:                               "-tai",
	model.FormNasai:                             "-nasai",
	model.FormSugiru:                            "-sugiru",
	model.FormSou:                               "-sou",
	model.FormE:                                 "-e",
	model.FormKi:                                "-ki",
	model.FormToku:                              "-toku",
	model.FormColloquialNegative:                "colloquial negative",
	model.FormProvisionalColloquialNegative:     "provisional colloquial negative",
	model.FormContinuous:                        "progressive or perfect",
	model.FormAdverbial:                         "adv",
	model.FormNoun:                              "noun",
}

func wordFormToString(f model.WordForm) string {
	if s, ok := wordFormNames[f]; ok {
		return s
	}
	return "unknown"
}
