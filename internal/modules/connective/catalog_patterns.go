package connective

func strs(v ...string) []string { return v }

func def(id string, rel Relation, level int, kind Kind, tpl, markers string, strong, weak, banned []string, check string) PatternDef {
	return PatternDef{
		ID:         id,
		Relation:   rel,
		Level:      level,
		Kind:       kind,
		Template:   tpl,
		MarkersZH:  markers,
		Strong:     strong,
		Weak:       weak,
		SeedBanned: banned,
		Check:      check,
	}
}

// tail builds the common "{A}，<marker>{B}" single-connector form.
func tail(id string, rel Relation, level int, marker string) PatternDef {
	return def(id, rel, level, KindSingle,
		"{A}，"+marker+"{B}", marker+"…",
		strs(marker), nil, strs(marker),
		"^.+，"+marker+".+$")
}

var patternCatalog = []PatternDef{
	// CAUSE
	def("zh_pat__cause__yinwei_suoyi__pair__l1", RelCause, 1, KindPair, "因为{A}，所以{B}", "因为…所以…", strs("因为", "所以"), nil, strs("因为", "所以"), "^因为.+，所以.+$"),
	def("zh_pat__cause__youyu_yinci__pair__l2", RelCause, 2, KindPair, "由于{A}，因此{B}", "由于…因此…", strs("由于", "因此"), nil, strs("由于", "因此"), "^由于.+，因此.+$"),
	def("zh_pat__cause__jiran_jiu__pair__l2", RelCause, 2, KindPair, "既然{A}，就{B}", "既然…就…", strs("既然"), strs("就"), strs("既然"), "^既然.+，就.+$"),
	def("zh_pat__cause__yinwei_only__single__l1", RelCause, 1, KindSingle, "因为{A}，{B}", "因为…", strs("因为"), nil, strs("因为"), "^因为.+，.+$"),
	def("zh_pat__cause__youyu_only__single__l2", RelCause, 2, KindSingle, "由于{A}，{B}", "由于…", strs("由于"), nil, strs("由于"), "^由于.+，.+$"),
	def("zh_pat__cause__zhengyinwei__single__l3", RelCause, 3, KindSingle, "正因为{A}，{B}", "正因为…", strs("正因为"), nil, strs("正因为"), "^正因为.+，.+$"),
	def("zh_pat__cause__b_shiyinwei_a__single__l2", RelCause, 2, KindSingle, "{B}，是因为{A}", "…是因为…", strs("是因为"), nil, strs("是因为"), "^.+，是因为.+$"),
	def("zh_pat__cause__zhisuoyi_shiyinwei__pair__l2", RelCause, 2, KindPair, "之所以{B}，是因为{A}", "之所以…是因为…", strs("之所以", "是因为"), nil, strs("之所以", "是因为"), "^之所以.+，是因为.+$"),
	def("zh_pat__cause__yuanyin_zaiyu__single__l3", RelCause, 3, KindSingle, "{B}的原因在于{A}", "…的原因在于…", strs("原因在于"), nil, strs("原因在于"), "^.+的原因在于.+$"),
	def("zh_pat__cause__daozhi__single__l2", RelCause, 2, KindSingle, "{A}，导致{B}", "导致…", strs("导致"), nil, strs("导致"), "^.+，导致.+$"),
	def("zh_pat__cause__shide__single__l2", RelCause, 2, KindSingle, "{A}，使得{B}", "使得…", strs("使得"), nil, strs("使得"), "^.+，使得.+$"),

	// RESULT
	tail("zh_pat__result__suoyi__single__l1", RelResult, 1, "所以"),
	tail("zh_pat__result__yinci__single__l1", RelResult, 1, "因此"),
	tail("zh_pat__result__yiner__single__l2", RelResult, 2, "因而"),
	tail("zh_pat__result__yushi__single__l1", RelResult, 1, "于是"),
	tail("zh_pat__result__jieguo__single__l1", RelResult, 1, "结果"),
	tail("zh_pat__result__jieguo_shi__single__l2", RelResult, 2, "结果是"),
	tail("zh_pat__result__conger__single__l3", RelResult, 3, "从而"),
	tail("zh_pat__result__jin_er__single__l3", RelResult, 3, "进而"),
	tail("zh_pat__result__yizhiyu__single__l3", RelResult, 3, "以至于"),

	// CONDITION
	def("zh_pat__cond__ruguo_jiu__pair__l1", RelCondition, 1, KindPair, "如果{A}，就{B}", "如果…就…", strs("如果"), strs("就"), strs("如果"), "^如果.+，就.+$"),
	def("zh_pat__cond__yaoshi_jiu__pair__l1", RelCondition, 1, KindPair, "要是{A}，就{B}", "要是…就…", strs("要是"), strs("就"), strs("要是"), "^要是.+，就.+$"),
	def("zh_pat__cond__jiaru_jiu__pair__l2", RelCondition, 2, KindPair, "假如{A}，就{B}", "假如…就…", strs("假如"), strs("就"), strs("假如"), "^假如.+，就.+$"),
	def("zh_pat__cond__zhiyao_jiu__pair__l1", RelCondition, 1, KindPair, "只要{A}，就{B}", "只要…就…", strs("只要"), strs("就"), strs("只要"), "^只要.+，就.+$"),
	def("zh_pat__cond__zhiyou_cai__pair__l2", RelCondition, 2, KindPair, "只有{A}，才{B}", "只有…才…", strs("只有"), strs("才"), strs("只有"), "^只有.+，才.+$"),
	def("zh_pat__cond__chufei_fouze__pair__l2", RelCondition, 2, KindPair, "除非{A}，否则{B}", "除非…否则…", strs("除非", "否则"), nil, strs("除非", "否则"), "^除非.+，否则.+$"),
	def("zh_pat__cond__a_dehua_b__single__l2", RelCondition, 2, KindSingle, "{A}的话，{B}", "…的话…", strs("的话"), nil, strs("的话"), "^.+的话，.+$"),
	tail("zh_pat__cond__fouze__single__l2", RelCondition, 2, "否则"),
	def("zh_pat__cond__qingkuangxia__single__l3", RelCondition, 3, KindSingle, "在{A}的情况下，{B}", "在…的情况下…", strs("情况下"), nil, strs("情况下"), "^在.+的情况下，.+$"),

	// CONTRAST
	def("zh_pat__contrast__suiran_danshi__pair__l1", RelContrast, 1, KindPair, "虽然{A}，但是{B}", "虽然…但是…", strs("虽然", "但是"), nil, strs("虽然", "但是"), "^虽然.+，但是.+$"),
	def("zh_pat__contrast__suiran_dan__pair__l2", RelContrast, 2, KindPair, "虽然{A}，但{B}", "虽然…但…", strs("虽然"), strs("但"), strs("虽然"), "^虽然.+，但.+$"),
	def("zh_pat__contrast__jinguan_dan__pair__l2", RelContrast, 2, KindPair, "尽管{A}，但{B}", "尽管…但…", strs("尽管"), strs("但"), strs("尽管"), "^尽管.+，但.+$"),
	def("zh_pat__contrast__jinguan_rengran__pair__l3", RelContrast, 3, KindPair, "尽管{A}，仍然{B}", "尽管…仍然…", strs("尽管", "仍然"), nil, strs("尽管", "仍然"), "^尽管.+，仍然.+$"),
	tail("zh_pat__contrast__a_buguo_b__single__l1", RelContrast, 1, "不过"),
	tail("zh_pat__contrast__a_keshi_b__single__l1", RelContrast, 1, "可是"),
	tail("zh_pat__contrast__a_ran'er_b__single__l2", RelContrast, 2, "然而"),
	tail("zh_pat__contrast__a_que_b__single__l2", RelContrast, 2, "却"),
	tail("zh_pat__contrast__a_faner_b__single__l3", RelContrast, 3, "反而"),
	def("zh_pat__contrast__biaomianshang_qishi__pair__l3", RelContrast, 3, KindPair, "表面上{A}，其实{B}", "表面上…其实…", strs("表面上", "其实"), nil, strs("表面上", "其实"), "^表面上.+，其实.+$"),
	def("zh_pat__contrast__yifangmian_lingyifangmian__pair__l3", RelContrast, 3, KindPair, "一方面{A}，另一方面{B}", "一方面…另一方面…", strs("一方面", "另一方面"), nil, strs("一方面", "另一方面"), "^一方面.+，另一方面.+$"),

	// TIME
	def("zh_pat__time__dang_shi__single__l1", RelTime, 1, KindSingle, "当{A}的时候，{B}", "当…的时候…", strs("当"), nil, strs("当"), "^当.+的时候，.+$"),
	def("zh_pat__time__zai_shi__single__l2", RelTime, 2, KindSingle, "在{A}的时候，{B}", "在…的时候…", strs("在"), nil, nil, "^在.+的时候，.+$"),
	def("zh_pat__time__a_yihou_b__single__l1", RelTime, 1, KindSingle, "{A}以后，{B}", "…以后…", strs("以后"), nil, strs("以后"), "^.+以后，.+$"),
	def("zh_pat__time__a_zhihou_b__single__l1", RelTime, 1, KindSingle, "{A}之后，{B}", "…之后…", strs("之后"), nil, strs("之后"), "^.+之后，.+$"),
	def("zh_pat__time__a_zhiqian_b__single__l1", RelTime, 1, KindSingle, "{A}之前，{B}", "…之前…", strs("之前"), nil, strs("之前"), "^.+之前，.+$"),
	def("zh_pat__time__cong_kaishi__single__l2", RelTime, 2, KindSingle, "从{A}开始，{B}", "从…开始…", strs("开始"), nil, strs("开始"), "^从.+开始，.+$"),
	def("zh_pat__time__zicong_yihou__single__l3", RelTime, 3, KindSingle, "自从{A}以后，{B}", "自从…以后…", strs("自从", "以后"), nil, strs("自从", "以后"), "^自从.+以后，.+$"),
	def("zh_pat__time__suizhe__single__l3", RelTime, 3, KindSingle, "随着{A}，{B}", "随着…", strs("随着"), nil, strs("随着"), "^随着.+，.+$"),
	def("zh_pat__time__meidang__single__l3", RelTime, 3, KindSingle, "每当{A}，{B}", "每当…", strs("每当"), nil, strs("每当"), "^每当.+，.+$"),

	// PURPOSE
	def("zh_pat__purpose__weile__single__l1", RelPurpose, 1, KindSingle, "为了{B}，{A}", "为了…", strs("为了"), nil, strs("为了"), "^为了.+，.+$"),
	def("zh_pat__purpose__a_weile_b__single__l1", RelPurpose, 1, KindSingle, "{A}，为了{B}", "…为了…", strs("为了"), nil, strs("为了"), "^.+，为了.+$"),
	tail("zh_pat__purpose__yibian__single__l2", RelPurpose, 2, "以便"),
	tail("zh_pat__purpose__haorang__single__l2", RelPurpose, 2, "好让"),
	tail("zh_pat__purpose__weideshi__single__l2", RelPurpose, 2, "为的是"),
	tail("zh_pat__purpose__mian_de__single__l3", RelPurpose, 3, "免得"),
	tail("zh_pat__purpose__yimian__single__l3", RelPurpose, 3, "以免"),
	def("zh_pat__purpose__weib_qijian__single__l3", RelPurpose, 3, KindSingle, "为{B}起见，{A}", "为…起见…", strs("起见"), nil, strs("起见"), "^为.+起见，.+$"),

	// ADDITION
	def("zh_pat__add__budan_erqie__pair__l2", RelAddition, 2, KindPair, "不但{A}，而且{B}", "不但…而且…", strs("不但", "而且"), nil, strs("不但", "而且"), "^不但.+，而且.+$"),
	def("zh_pat__add__buji_hai__pair__l1", RelAddition, 1, KindPair, "不仅{A}，还{B}", "不仅…还…", strs("不仅"), strs("还"), strs("不仅"), "^不仅.+，还.+$"),
	tail("zh_pat__add__a_erqie_b__single__l1", RelAddition, 1, "而且"),
	tail("zh_pat__add__a_bingqie_b__single__l2", RelAddition, 2, "并且"),
	tail("zh_pat__add__a_tongshi_b__single__l2", RelAddition, 2, "同时"),
	def("zh_pat__add__a_yebing_b__single__l1", RelAddition, 1, KindSingle, "{A}，也{B}", "也…", nil, strs("也"), nil, "^.+，也.+$"),
	def("zh_pat__add__chule_hai__pair__l3", RelAddition, 3, KindPair, "除了{A}以外，还{B}", "除了…以外，还…", strs("除了"), strs("还"), strs("除了"), "^除了.+以外，还.+$"),

	// CHOICE
	def("zh_pat__choice__yaome_yaome__pair__l1", RelChoice, 1, KindPair, "要么{A}，要么{B}", "要么…要么…", strs("要么"), nil, strs("要么"), "^要么.+，要么.+$"),
	def("zh_pat__choice__huozhe_huozhe__pair__l2", RelChoice, 2, KindPair, "或者{A}，或者{B}", "或者…或者…", strs("或者"), nil, strs("或者"), "^或者.+，或者.+$"),
	def("zh_pat__choice__bushi_jiushi__pair__l2", RelChoice, 2, KindPair, "不是{A}，就是{B}", "不是…就是…", strs("不是", "就是"), nil, strs("不是", "就是"), "^不是.+，就是.+$"),
	tail("zh_pat__choice__a_huozhe_b__single__l1", RelChoice, 1, "或者"),
	def("zh_pat__choice__yuqi_buru__pair__l3", RelChoice, 3, KindPair, "与其{A}，不如{B}", "与其…不如…", strs("与其", "不如"), nil, strs("与其", "不如"), "^与其.+，不如.+$"),
	def("zh_pat__choice__ningke_yebu__pair__l3", RelChoice, 3, KindPair, "宁可{A}，也不{B}", "宁可…也不…", strs("宁可"), strs("也不"), strs("宁可"), "^宁可.+，也不.+$"),
}
